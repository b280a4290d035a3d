package ruleset

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

// Definition is the serialised form of a validator.Rule. Callbacks are
// referenced by name and resolved through a Registry.
type Definition struct {
	Type     string   `json:"type" yaml:"type" validate:"required,ruletype"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" validate:"max=255"`
	Nullable bool     `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty" validate:"omitempty,rulepattern"`
	Callback string   `json:"callback,omitempty" yaml:"callback,omitempty" validate:"omitempty,identifier"`
}

// Document maps field names to definitions.
type Document map[string]Definition

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// structure checks definitions before they reach the engine, so rule files
// fail with the offending field named.
var structure = newStructureValidator()

func newStructureValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())

	must := func(tag string, fn playground.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("ruleset: register %s validation: %v", tag, err))
		}
	}
	must("ruletype", func(fl playground.FieldLevel) bool {
		_, ok := validator.LookupKind(fl.Field().String())
		return ok
	})
	must("rulepattern", func(fl playground.FieldLevel) bool {
		_, ok := validator.LookupPattern(fl.Field().String())
		return ok
	})
	must("identifier", func(fl playground.FieldLevel) bool {
		return identifierRegex.MatchString(fl.Field().String())
	})
	return v
}

// Validate reports structural problems of a single definition.
func (d Definition) Validate() error {
	if err := structure.Struct(d); err != nil {
		return errors.Join(ErrInvalidDefinition, describe(err))
	}
	return nil
}

// describe turns validation errors into "Field: tag" pairs.
func describe(err error) error {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.New(strings.Join(parts, "; "))
}

// Rule converts d into an engine rule, resolving the callback by name.
func (d Definition) Rule(reg *Registry) (validator.Rule, error) {
	rule := validator.Rule{
		Type:     d.Type,
		Name:     d.Name,
		Nullable: d.Nullable,
		Min:      d.Min,
		Max:      d.Max,
		Pattern:  d.Pattern,
	}
	if d.Callback == "" {
		return rule, nil
	}

	fn, ok := reg.Lookup(d.Callback)
	if !ok {
		return validator.Rule{}, fmt.Errorf("%w: %s", ErrUnknownCallback, d.Callback)
	}
	rule.Callback = fn
	return rule, nil
}

// RuleSet validates every definition and converts the document. Fields are
// processed in sorted order so the first reported error is stable.
func (doc Document) RuleSet(reg *Registry) (validator.RuleSet, error) {
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}

	rules := make(validator.RuleSet, len(doc))
	for _, field := range slices.Sorted(maps.Keys(doc)) {
		def := doc[field]
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		rule, err := def.Rule(reg)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		rules[field] = rule
	}
	return rules, nil
}
