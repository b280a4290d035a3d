// Package validator checks untyped records against declarative rule sets.
//
// The package has two surfaces. The predicate library is a flat set of pure
// functions (IsNumber, MinLength, InArray, IsEmail, ...) that accept any
// value and never panic: an argument of the wrong shape simply yields false.
// The Engine builds on top of it and interprets a RuleSet against a Record,
// accumulating per-field failures into an ErrorMap.
//
// # Rules
//
// A Rule names a registered type and optional constraints:
//
//	rules := validator.RuleSet{
//	    "age":   {Type: "integer", Min: validator.Limit(18)},
//	    "email": {Type: "string", Pattern: "email", Max: validator.Limit(255)},
//	    "tags":  {Type: "array", Max: validator.Limit(5), Nullable: true},
//	}
//
// Registered types are number, int, integer, string, numstring, intstring,
// bool, boolean, array, object and callback. Each type resolves through a
// fixed dispatch table to a type predicate and min/max checkers; Min and Max
// are inclusive and mean value, character count or element count depending
// on the type. Registered patterns are japanese, email, url and uuid.
//
// Rule sets decoded from JSON or YAML may be passed as plain descriptor maps
// ({"type": "number", "min": 10}) and are converted by Rules.
//
// # Engine
//
//	e, err := validator.New(validator.WithLanguage("ja")).Rules(data, rules)
//	if err != nil {
//	    // configuration error: ErrInvalidArgumentShape, ErrEmptyRuleSet,
//	    // ErrUnknownType, ErrUnknownPattern or ErrPatternTypeMismatch
//	}
//	if !e.Exec() {
//	    for _, field := range e.Errors().Fields() {
//	        // ...
//	    }
//	}
//
// For each field the engine runs, in order: the nullable short-circuit, the
// presence check, the type check, min, max, pattern (string rules only) and
// the callback (callback rules only). A missing field or a type mismatch stops
// the checks for that field; the other failures accumulate.
//
// Configuration errors are returned by Rules. Validation failures are never
// returned as errors from Exec; use Errors or Err to inspect them.
//
// Messages come from the i18n catalogs bundled with pkg/i18n ("en" and "ja").
package validator
