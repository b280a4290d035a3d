package validator

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/rulecheck/pkg/i18n"
	"github.com/dmitrymomot/rulecheck/pkg/logger"
)

// Engine validates a record against a rule set.
//
// An engine starts unconfigured; Rules assigns data and rules, Exec runs the
// checks and Errors reports the failures of the last run. The type and
// pattern tables are shared read-only values. Engine methods are safe for
// concurrent use. Checks run without holding the engine lock, so a callback
// may call back into the engine that invoked it.
type Engine struct {
	mu       sync.RWMutex
	data     Record
	rules    RuleSet
	result   ErrorMap
	executed bool
	// gen counts Rules calls; a run only stores its result if no Rules
	// call happened while it was in progress.
	gen uint64

	msgs           messages
	logger         *slog.Logger
	strictPatterns bool
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	translator     *i18n.Translator
	lang           string
	logger         *slog.Logger
	strictPatterns bool
}

// WithLanguage selects the message language. The closest supported catalog
// language is used; unknown languages fall back to the translator default.
func WithLanguage(lang string) Option {
	return func(c *engineConfig) {
		c.lang = lang
	}
}

// WithTranslator replaces the bundled message catalogs.
func WithTranslator(t *i18n.Translator) Option {
	return func(c *engineConfig) {
		if t != nil {
			c.translator = t
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrictPatterns makes Rules reject a pattern on a rule whose type is not
// "string". By default such patterns are ignored.
func WithStrictPatterns(strict bool) Option {
	return func(c *engineConfig) {
		c.strictPatterns = strict
	}
}

// New creates an unconfigured engine.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.translator == nil {
		cfg.translator = i18n.Default()
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}

	lang := cfg.translator.DefaultLanguage()
	if cfg.lang != "" {
		lang = cfg.translator.Match(cfg.lang)
	}

	return &Engine{
		msgs:           messages{tr: cfg.translator, lang: lang},
		logger:         cfg.logger,
		strictPatterns: cfg.strictPatterns,
	}
}

// Language returns the catalog language used for messages.
func (e *Engine) Language() string {
	return e.msgs.lang
}

// Rules assigns the record and rule set to validate and returns the engine.
//
// data must be a string-keyed map. ruleSet must be a RuleSet, a
// map[string]Rule or a string-keyed map of rule descriptors such as
// {"type": "number", "min": 10}. The rule set must not be empty and every
// rule type and pattern must be registered. On error the previous
// configuration is kept.
func (e *Engine) Rules(data, ruleSet any) (*Engine, error) {
	record, rules, err := e.configure(data, ruleSet)
	if err != nil {
		e.logger.Debug("rule set rejected", logger.Error(err))
		return e, err
	}

	e.mu.Lock()
	e.data = record
	e.rules = rules
	e.result = nil
	e.executed = false
	e.gen++
	e.mu.Unlock()

	return e, nil
}

func (e *Engine) configure(data, ruleSet any) (Record, RuleSet, error) {
	record, ok := asRecord(data)
	if !ok {
		return nil, nil, fmt.Errorf("%w: data is %T", ErrInvalidArgumentShape, data)
	}
	rules, err := asRuleSet(ruleSet)
	if err != nil {
		return nil, nil, err
	}

	if len(rules) == 0 {
		return nil, nil, ErrEmptyRuleSet
	}

	fields := slices.Sorted(maps.Keys(rules))
	for _, field := range fields {
		if _, ok := LookupKind(rules[field].Type); !ok {
			return nil, nil, &UnknownTypeError{Field: field, Type: rules[field].Type}
		}
	}

	for _, field := range fields {
		rule := rules[field]
		if rule.Pattern == "" {
			continue
		}
		if _, ok := LookupPattern(rule.Pattern); !ok {
			return nil, nil, &UnknownPatternError{Field: field, Pattern: rule.Pattern}
		}
		if e.strictPatterns && rule.Type != KindString.String() {
			return nil, nil, fmt.Errorf("%w: field %q has type %q", ErrPatternTypeMismatch, field, rule.Type)
		}
	}

	return record, rules, nil
}

// Exec validates the assigned record and reports whether it conforms.
// Every run recomputes the result from the assigned data and rules.
func (e *Engine) Exec() bool {
	return e.execute().IsEmpty()
}

// Errors returns the failures found by the last Exec, running the checks
// first if Exec has not run since the last Rules call. The returned map is a
// copy.
func (e *Engine) Errors() ErrorMap {
	e.mu.RLock()
	if e.executed {
		defer e.mu.RUnlock()
		return e.result.Clone()
	}
	e.mu.RUnlock()

	return e.execute().Clone()
}

// Err returns the failures of the last run as an error, nil when valid.
func (e *Engine) Err() error {
	return e.Errors().Err()
}

// execute runs the checks on the current data and rules and stores the
// result. The returned map is owned by the engine.
func (e *Engine) execute() ErrorMap {
	e.mu.RLock()
	data, rules, gen := e.data, e.rules, e.gen
	e.mu.RUnlock()

	result := e.run(data, rules)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen == gen {
		e.result = result
		e.executed = true
	}
	return result
}

// run applies rules to data in field-name order.
func (e *Engine) run(data Record, rules RuleSet) ErrorMap {
	errs := make(ErrorMap)
	if rules == nil {
		e.logger.Debug("exec called before rules were assigned")
		return errs
	}

	fields := slices.Sorted(maps.Keys(rules))
	for _, field := range fields {
		rule := rules[field]
		e.checkField(errs, data, field, rule)
		e.logger.Debug("field checked",
			logger.Field(field),
			logger.Group("rule", logger.RuleType(rule.Type), logger.Pattern(rule.Pattern)),
			slog.Bool("valid", !errs.Has(field)),
		)
	}

	e.logger.Debug("record validated",
		logger.Fields(len(fields)),
		logger.ErrorCount(len(errs)),
		logger.Language(e.msgs.lang),
	)
	return errs
}

// checkField stops after a missing field or a type mismatch since the
// constraints are meaningless then; all other checks accumulate.
func (e *Engine) checkField(errs ErrorMap, data Record, field string, rule Rule) {
	value, present := data[field]
	if rule.Nullable && !present {
		return
	}

	name := rule.label(field)
	if !present {
		errs.Add(field, e.msgs.text(KeyMissing, name))
		return
	}

	kind, _ := LookupKind(rule.Type)
	if !kind.Check(value) {
		errs.Add(field, e.msgs.text(KeyInvalidType, name))
		return
	}

	if rule.Min != nil {
		if valid, ok := kind.CheckMin(value, *rule.Min); ok && !valid {
			errs.Add(field, e.msgs.min(value, *rule.Min, name))
		}
	}

	if rule.Max != nil {
		if valid, ok := kind.CheckMax(value, *rule.Max); ok && !valid {
			errs.Add(field, e.msgs.max(value, *rule.Max, name))
		}
	}

	if rule.Pattern != "" && kind == KindString {
		if pattern, ok := LookupPattern(rule.Pattern); ok && !pattern.Match(value) {
			errs.Add(field, e.msgs.text(KeyPattern, name))
		}
	}

	if kind == KindCallback {
		e.runCallback(errs, field, name, value, rule.Callback)
	}
}

func (e *Engine) runCallback(errs ErrorMap, field, name string, value any, fn CallbackFunc) {
	if fn == nil {
		errs.Add(field, e.msgs.text(KeyCallbackMissing, name))
		return
	}

	out, ok := callbackMessages(fn(value, name))
	if !ok {
		errs.Add(field, e.msgs.text(KeyCallbackNotArray, name))
		return
	}
	for _, msg := range out {
		errs.Add(field, msg)
	}
}

// callbackMessages collects the string elements of a callback result.
// ok is false when the result is not a slice or an array.
func callbackMessages(out any) ([]string, bool) {
	if msgs, ok := out.([]string); ok {
		return msgs, true
	}

	rv, ok := arrayValue(out)
	if !ok {
		return nil, false
	}
	msgs := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if elem.IsValid() && elem.Kind() == reflect.String {
			msgs = append(msgs, elem.String())
		}
	}
	return msgs, true
}

// Validate runs a one-shot validation. The error is a configuration error;
// validation failures are reported in the ErrorMap.
func Validate(data, ruleSet any, opts ...Option) (ErrorMap, error) {
	e, err := New(opts...).Rules(data, ruleSet)
	if err != nil {
		return nil, err
	}
	e.Exec()
	return e.Errors(), nil
}
