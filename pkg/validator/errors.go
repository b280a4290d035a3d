package validator

import (
	"errors"
	"fmt"
)

// Configuration errors returned by Engine.Rules. They report wiring mistakes
// and are never accumulated into an ErrorMap.
var (
	// ErrInvalidArgumentShape is returned when data or the rule set is not a
	// string-keyed map, or a rule descriptor has attributes of the wrong kind.
	ErrInvalidArgumentShape = errors.New("data and rules must be string-keyed maps")

	// ErrEmptyRuleSet is returned when the rule set has no entries.
	ErrEmptyRuleSet = errors.New("rule set must contain at least one rule")

	// ErrUnknownType is matched by every UnknownTypeError.
	ErrUnknownType = errors.New("unknown rule type")

	// ErrUnknownPattern is matched by every UnknownPatternError.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrPatternTypeMismatch is returned in strict pattern mode when a
	// pattern is set on a rule whose type is not "string".
	ErrPatternTypeMismatch = errors.New("pattern applies to string rules only")
)

// UnknownTypeError names a rule type missing from the type table.
type UnknownTypeError struct {
	Field string
	Type  string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("not found type: %s (field %q)", e.Type, e.Field)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// UnknownPatternError names a pattern missing from the pattern table.
type UnknownPatternError struct {
	Field   string
	Pattern string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("not found pattern: %s (field %q)", e.Pattern, e.Field)
}

func (e *UnknownPatternError) Is(target error) bool {
	return target == ErrUnknownPattern
}
