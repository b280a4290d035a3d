package validator_test

// Value groups shared by the predicate tests. Every predicate is checked
// against the groups it must reject.
var (
	ints            = []any{10000, -10000}
	intsWithDecimal = []any{100.00, -100.00}
	floats          = []any{123.45, -123.45}
	stringInts      = []any{"10000", "-10000"}
	stringIntsDec   = []any{"100.00", "-100.00"}
	stringFloats    = []any{"123.45", "-123.45"}
	stringWords     = []any{"hogehoge"}
	arrays          = []any{[]any{"a", "b", "c"}}
	emptyArrays     = []any{[]any{}}
	objects         = []any{map[string]any{"key": "hoge"}}
	emptyObjects    = []any{map[string]any{}}
	booleans        = []any{true, false}
	nulls           = []any{nil}
)

func merge(groups ...[]any) []any {
	var out []any
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func numbers() []any {
	return merge(ints, intsWithDecimal, floats)
}

func strs() []any {
	return merge(stringInts, stringIntsDec, stringFloats, stringWords)
}

func collections() []any {
	return merge(arrays, emptyArrays, objects, emptyObjects)
}
