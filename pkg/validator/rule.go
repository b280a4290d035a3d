package validator

import (
	"fmt"
	"reflect"
)

// Record is the input under validation. The engine never mutates it.
type Record map[string]any

// CallbackFunc validates value on behalf of a "callback" rule. It must return
// a slice whose string elements are the error messages for the field; an
// empty slice means the value is valid.
type CallbackFunc func(value any, name string) any

// Rule describes the expectations for a single field.
type Rule struct {
	// Type selects the type predicate and min/max checkers. Required.
	Type string `json:"type" yaml:"type"`
	// Name labels the field in messages. Defaults to the field key.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Nullable skips every check when the field is absent.
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	// Min and Max are lower and upper bounds, inclusive. Their meaning
	// depends on Type: value, character count or element count.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	// Pattern names a format predicate. Applies to "string" rules.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// Callback is required for "callback" rules.
	Callback CallbackFunc `json:"-" yaml:"-"`
}

// RuleSet maps field names to rules.
type RuleSet map[string]Rule

// Limit returns a pointer to n for use as Rule.Min or Rule.Max.
func Limit[T Numeric](n T) *float64 {
	f := float64(n)
	return &f
}

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func (r Rule) label(field string) string {
	if r.Name != "" {
		return r.Name
	}
	return field
}

// asRecord accepts any string-keyed map.
func asRecord(data any) (Record, bool) {
	switch d := data.(type) {
	case Record:
		return d, true
	case map[string]any:
		return Record(d), true
	}

	rv, ok := objectValue(data)
	if !ok {
		return nil, false
	}
	rec := make(Record, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		rec[iter.Key().String()] = iter.Value().Interface()
	}
	return rec, true
}

// asRuleSet accepts a RuleSet, a map[string]Rule or a string-keyed map of
// rule descriptors as produced by decoding JSON or YAML.
func asRuleSet(rules any) (RuleSet, error) {
	switch r := rules.(type) {
	case RuleSet:
		return r, nil
	case map[string]Rule:
		return RuleSet(r), nil
	}

	rv, ok := objectValue(rules)
	if !ok {
		return nil, fmt.Errorf("%w: rules is %T", ErrInvalidArgumentShape, rules)
	}

	rs := make(RuleSet, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		field := iter.Key().String()
		rule, err := ruleFromDescriptor(field, iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		rs[field] = rule
	}
	return rs, nil
}

func ruleFromDescriptor(field string, d any) (Rule, error) {
	switch r := d.(type) {
	case Rule:
		return r, nil
	case *Rule:
		if r != nil {
			return *r, nil
		}
	}

	desc, ok := asRecord(d)
	if !ok {
		return Rule{}, fmt.Errorf("%w: rule for %q is %T", ErrInvalidArgumentShape, field, d)
	}

	var rule Rule
	// A non-string type can never be registered; keep it printable so the
	// unknown type check names it.
	if t, ok := desc["type"]; ok && t != nil {
		if s, isStr := asString(t); isStr {
			rule.Type = s
		} else {
			rule.Type = fmt.Sprint(t)
		}
	}

	var err error
	if rule.Name, err = descriptorString(field, desc, "name"); err != nil {
		return Rule{}, err
	}
	if rule.Pattern, err = descriptorString(field, desc, "pattern"); err != nil {
		return Rule{}, err
	}
	if rule.Min, err = descriptorLimit(field, desc, "min"); err != nil {
		return Rule{}, err
	}
	if rule.Max, err = descriptorLimit(field, desc, "max"); err != nil {
		return Rule{}, err
	}

	// Only a literal true enables nullable.
	if n, ok := desc["nullable"].(bool); ok {
		rule.Nullable = n
	}

	if rule.Callback, err = descriptorCallback(field, desc["callback"]); err != nil {
		return Rule{}, err
	}

	return rule, nil
}

func descriptorString(field string, desc Record, attr string) (string, error) {
	v, ok := desc[attr]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := asString(v)
	if !ok {
		return "", fmt.Errorf("%w: %s of %q is %T", ErrInvalidArgumentShape, attr, field, v)
	}
	return s, nil
}

func descriptorLimit(field string, desc Record, attr string) (*float64, error) {
	v, ok := desc[attr]
	if !ok || v == nil {
		return nil, nil
	}
	if !IsNumber(v) {
		return nil, fmt.Errorf("%w: %s of %q is %T", ErrInvalidArgumentShape, attr, field, v)
	}
	f, _ := toFloat(v)
	return &f, nil
}

func descriptorCallback(field string, v any) (CallbackFunc, error) {
	switch fn := v.(type) {
	case nil:
		return nil, nil
	case CallbackFunc:
		return fn, nil
	case func(any, string) any:
		return fn, nil
	case func(any, string) []string:
		if fn == nil {
			return nil, nil
		}
		return func(value any, name string) any { return fn(value, name) }, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func && rv.IsNil() {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: callback of %q is %T", ErrInvalidArgumentShape, field, v)
}
