package validator

import (
	"encoding/json"
	"math"
	"reflect"
)

// toFloat returns the numeric value of v for any Go integer or float kind
// (named types included) and json.Number.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// IsNumber reports whether v is a finite numeric value.
// NaN and ±Inf are not numbers.
func IsNumber(v any) bool {
	f, ok := toFloat(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsInteger reports whether v is numeric and has no fractional component.
func IsInteger(v any) bool {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}

// MinNumber reports whether v is at least limit (gt=true) or strictly
// greater than limit (gt=false). Non-numeric arguments yield false.
func MinNumber(v, limit any, gt bool) bool {
	if !IsNumber(v) || !IsNumber(limit) {
		return false
	}
	val, _ := toFloat(v)
	lim, _ := toFloat(limit)
	if gt {
		return val >= lim
	}
	return val > lim
}

// MaxNumber reports whether v is at most limit (lt=true) or strictly
// less than limit (lt=false). Non-numeric arguments yield false.
func MaxNumber(v, limit any, lt bool) bool {
	if !IsNumber(v) || !IsNumber(limit) {
		return false
	}
	val, _ := toFloat(v)
	lim, _ := toFloat(limit)
	if lt {
		return val <= lim
	}
	return val < lim
}

// BetweenNumber is MinNumber(v, min, gt) && MaxNumber(v, max, lt).
// Bounds are not reordered: min > max never matches.
func BetweenNumber(v, min, max any, gt, lt bool) bool {
	return MinNumber(v, min, gt) && MaxNumber(v, max, lt)
}
