package validator

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// Integer grammar: optional minus, digits, optional "." followed by zeros only.
	intOnStringRegex = regexp.MustCompile(`^-?[0-9]*$|^-?[0-9]*\.0*$`)

	decimalOnStringRegex = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	prefixedIntRegex     = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// asString accepts string kinds except json.Number, which is a number.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case nil, json.Number:
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := asString(v)
	return ok
}

// IsIntegerOnString reports whether v is a string holding an integer:
// "123", "-123" and "123.00" match, "123.45" does not.
func IsIntegerOnString(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	return intOnStringRegex.MatchString(s)
}

// IsNumberOnString reports whether v is a string that converts to a finite
// number. Surrounding whitespace is ignored, decimal and exponent forms are
// accepted as well as 0x, 0o and 0b prefixed integers. A blank string
// converts to zero and therefore matches.
func IsNumberOnString(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}

	s = strings.TrimSpace(s)
	if s == "" || prefixedIntRegex.MatchString(s) {
		return true
	}
	if !decimalOnStringRegex.MatchString(s) {
		return false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	return !math.IsInf(f, 0)
}

// lengthLimit accepts non-negative integer limits only.
func lengthLimit(limit any) (float64, bool) {
	if !IsInteger(limit) {
		return 0, false
	}
	lim, _ := toFloat(limit)
	if lim < 0 {
		return 0, false
	}
	return lim, true
}

func compareMin(n int, lim float64, gt bool) bool {
	if gt {
		return float64(n) >= lim
	}
	return float64(n) > lim
}

func compareMax(n int, lim float64, lt bool) bool {
	if lt {
		return float64(n) <= lim
	}
	return float64(n) < lim
}

// MinLength reports whether the string v has at least limit characters
// (gt=true) or more than limit characters (gt=false). Characters are runes.
// The limit must be a non-negative integer.
func MinLength(v, limit any, gt bool) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	lim, ok := lengthLimit(limit)
	if !ok {
		return false
	}
	return compareMin(utf8.RuneCountInString(s), lim, gt)
}

// MaxLength reports whether the string v has at most limit characters
// (lt=true) or fewer than limit characters (lt=false).
func MaxLength(v, limit any, lt bool) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	lim, ok := lengthLimit(limit)
	if !ok {
		return false
	}
	return compareMax(utf8.RuneCountInString(s), lim, lt)
}

// BetweenLength is MinLength(v, min, gt) && MaxLength(v, max, lt).
func BetweenLength(v, min, max any, gt, lt bool) bool {
	return MinLength(v, min, gt) && MaxLength(v, max, lt)
}
