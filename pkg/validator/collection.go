package validator

import "reflect"

// IsBoolean reports whether v is a boolean.
func IsBoolean(v any) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Bool
}

func arrayValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return reflect.Value{}, false
	}
	return rv, true
}

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool {
	_, ok := arrayValue(v)
	return ok
}

// MinArrayLength reports whether the array v has at least limit elements
// (gt=true) or more than limit elements (gt=false).
func MinArrayLength(v, limit any, gt bool) bool {
	rv, ok := arrayValue(v)
	if !ok {
		return false
	}
	lim, ok := lengthLimit(limit)
	if !ok {
		return false
	}
	return compareMin(rv.Len(), lim, gt)
}

// MaxArrayLength reports whether the array v has at most limit elements
// (lt=true) or fewer than limit elements (lt=false).
func MaxArrayLength(v, limit any, lt bool) bool {
	rv, ok := arrayValue(v)
	if !ok {
		return false
	}
	lim, ok := lengthLimit(limit)
	if !ok {
		return false
	}
	return compareMax(rv.Len(), lim, lt)
}

func BetweenArrayLength(v, min, max any, gt, lt bool) bool {
	return MinArrayLength(v, min, gt) && MaxArrayLength(v, max, lt)
}

// InArray reports whether value is an element of array.
// It returns false when array is not a slice or an array.
func InArray(value, array any) bool {
	idx, ok := InArrayIndex(value, array)
	return ok && idx != -1
}

// InArrayIndex returns the index of the first element of array strictly
// equal to value, or -1. ok is false when array is not a slice or an array.
//
// Elements match when they have the same dynamic type and are equal, except
// numbers which match by value regardless of their Go type.
func InArrayIndex(value, array any) (idx int, ok bool) {
	rv, ok := arrayValue(array)
	if !ok {
		return -1, false
	}
	for i := range rv.Len() {
		if strictEqual(value, rv.Index(i).Interface()) {
			return i, true
		}
	}
	return -1, true
}

func strictEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual recovers from comparisons of interface-typed fields holding
// uncomparable values.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func objectValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	return rv, true
}

// IsObject reports whether v is a map keyed by strings.
func IsObject(v any) bool {
	_, ok := objectValue(v)
	return ok
}

// HasKeyInObject reports whether obj is a string-keyed map containing key.
func HasKeyInObject(obj, key any) bool {
	rv, ok := objectValue(obj)
	if !ok {
		return false
	}
	k, ok := asString(key)
	if !ok {
		return false
	}
	return rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).IsValid()
}

// MinObjectLength reports whether the map v has at least limit keys
// (gt=true) or more than limit keys (gt=false).
func MinObjectLength(v, limit any, gt bool) bool {
	rv, ok := objectValue(v)
	if !ok {
		return false
	}
	lim, ok := lengthLimit(limit)
	if !ok {
		return false
	}
	return compareMin(rv.Len(), lim, gt)
}

// MaxObjectLength reports whether the map v has at most limit keys
// (lt=true) or fewer than limit keys (lt=false).
func MaxObjectLength(v, limit any, lt bool) bool {
	rv, ok := objectValue(v)
	if !ok {
		return false
	}
	lim, ok := lengthLimit(limit)
	if !ok {
		return false
	}
	return compareMax(rv.Len(), lim, lt)
}

func BetweenObjectLength(v, min, max any, gt, lt bool) bool {
	return MinObjectLength(v, min, gt) && MaxObjectLength(v, max, lt)
}

// Callback invokes fn with args and returns its result unchanged.
// A nil fn yields the zero value of R.
func Callback[R any](fn func(args ...any) R, args ...any) R {
	if fn == nil {
		var zero R
		return zero
	}
	return fn(args...)
}
