package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

func TestIsBoolean(t *testing.T) {
	for _, v := range booleans {
		assert.True(t, validator.IsBoolean(v), "%#v", v)
	}
	for _, v := range merge(numbers(), strs(), collections(), nulls) {
		assert.False(t, validator.IsBoolean(v), "%#v", v)
	}
}

func TestIsArray(t *testing.T) {
	for _, v := range merge(arrays, emptyArrays, []any{[]string{"a"}, [2]int{1, 2}}) {
		assert.True(t, validator.IsArray(v), "%#v", v)
	}
	for _, v := range merge(numbers(), strs(), objects, emptyObjects, booleans, nulls) {
		assert.False(t, validator.IsArray(v), "%#v", v)
	}
}

func TestArrayLength(t *testing.T) {
	t.Run("rejects non array values", func(t *testing.T) {
		for _, v := range merge(numbers(), strs(), objects, emptyObjects, booleans, nulls) {
			assert.False(t, validator.MinArrayLength(v, 0, true), "%#v", v)
			assert.False(t, validator.MaxArrayLength(v, 10, true), "%#v", v)
		}
	})

	t.Run("rejects invalid limits", func(t *testing.T) {
		for _, limit := range merge(floats, strs(), collections(), booleans, nulls, []any{-1}) {
			assert.False(t, validator.MinArrayLength([]any{1}, limit, true), "%#v", limit)
			assert.False(t, validator.MaxArrayLength([]any{1}, limit, true), "%#v", limit)
		}
	})

	t.Run("min and max", func(t *testing.T) {
		assert.True(t, validator.MinArrayLength([]int{1, 2}, 2, true))
		assert.False(t, validator.MinArrayLength([]int{1, 2}, 2, false))
		assert.True(t, validator.MinArrayLength([]int{1, 2, 3}, 2, false))
		assert.True(t, validator.MaxArrayLength([]int{1, 2}, 2, true))
		assert.False(t, validator.MaxArrayLength([]int{1, 2}, 2, false))
		assert.True(t, validator.MaxArrayLength([]int{}, 0, true))
	})

	t.Run("between", func(t *testing.T) {
		flags := [][2]bool{{true, true}, {true, false}, {false, true}, {false, false}}
		// Expected results per array length 1..6, one entry per flag pair.
		want := [][4]bool{
			{false, false, false, false},
			{false, false, false, false},
			{true, true, false, false},
			{true, true, true, true},
			{true, false, true, false},
			{false, false, false, false},
		}

		var arr []int
		for _, row := range want {
			arr = append(arr, 0)
			for i, f := range flags {
				assert.Equal(t, row[i], validator.BetweenArrayLength(arr, 3, 5, f[0], f[1]), "len=%d gt=%v lt=%v", len(arr), f[0], f[1])
			}
		}
	})
}

func TestInArray(t *testing.T) {
	t.Run("rejects non array haystacks", func(t *testing.T) {
		for _, v := range merge(numbers(), strs(), objects, emptyObjects, booleans, nulls) {
			assert.False(t, validator.InArray("hoge", v), "%#v", v)
			idx, ok := validator.InArrayIndex("hoge", v)
			assert.False(t, ok)
			assert.Equal(t, -1, idx)
		}
	})

	tests := []struct {
		name  string
		index int
		found bool
		value any
		array any
	}{
		{"number present", 1, true, 1, []any{0, 1, 2}},
		{"number absent", -1, false, 1, []any{0, 2, 3}},
		{"string present", 0, true, "hoge", []string{"hoge", "fuga", "piyo"}},
		{"numbers match across types", 2, true, 2, []float64{0, 1, 2}},
		{"no loose equality", -1, false, "1", []any{1, 2}},
		{"nil element", 1, true, nil, []any{"a", nil}},
		{"uncomparable elements never match", -1, false, []int{1}, []any{[]int{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := validator.InArrayIndex(tt.value, tt.array)
			assert.True(t, ok)
			assert.Equal(t, tt.index, idx)
			assert.Equal(t, tt.found, validator.InArray(tt.value, tt.array))
		})
	}
}

func TestIsObject(t *testing.T) {
	for _, v := range merge(objects, emptyObjects, []any{map[string]int{"a": 1}, validator.Record{}}) {
		assert.True(t, validator.IsObject(v), "%#v", v)
	}
	for _, v := range merge(numbers(), strs(), arrays, emptyArrays, booleans, nulls, []any{map[int]string{1: "a"}}) {
		assert.False(t, validator.IsObject(v), "%#v", v)
	}
}

func TestHasKeyInObject(t *testing.T) {
	t.Run("rejects non objects", func(t *testing.T) {
		for _, v := range merge(numbers(), strs(), arrays, emptyArrays, booleans, nulls) {
			assert.False(t, validator.HasKeyInObject(v, "hoge"), "%#v", v)
		}
	})

	t.Run("rejects non string keys", func(t *testing.T) {
		for _, k := range merge(numbers(), collections(), booleans, nulls) {
			assert.False(t, validator.HasKeyInObject(map[string]any{}, k), "%#v", k)
		}
	})

	tests := []struct {
		want bool
		obj  any
	}{
		{false, map[string]any{}},
		{false, map[string]any{"hoge": 1}},
		{true, map[string]any{"hoge": 1, "fuga": 2}},
		{true, map[string]int{"hoge": 1, "fuga": 2, "piyo": 3}},
		{true, map[label]any{"fuga": nil}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.HasKeyInObject(tt.obj, "fuga"), "%#v", tt.obj)
	}
}

func TestObjectLength(t *testing.T) {
	t.Run("rejects non objects", func(t *testing.T) {
		for _, v := range merge(numbers(), strs(), arrays, emptyArrays, booleans, nulls) {
			assert.False(t, validator.MinObjectLength(v, 0, true), "%#v", v)
			assert.False(t, validator.MaxObjectLength(v, 10, true), "%#v", v)
		}
	})

	t.Run("rejects invalid limits", func(t *testing.T) {
		obj := map[string]any{"a": 1}
		for _, limit := range merge(floats, strs(), collections(), booleans, nulls, []any{-1}) {
			assert.False(t, validator.MinObjectLength(obj, limit, true), "%#v", limit)
			assert.False(t, validator.MaxObjectLength(obj, limit, true), "%#v", limit)
		}
	})

	t.Run("between", func(t *testing.T) {
		flags := [][2]bool{{true, true}, {true, false}, {false, true}, {false, false}}
		want := [][4]bool{
			{false, false, false, false},
			{false, false, false, false},
			{true, true, false, false},
			{true, true, true, true},
			{true, false, true, false},
			{false, false, false, false},
		}

		obj := map[string]any{}
		for i, row := range want {
			obj[strings.Repeat("k", i+1)] = i
			for j, f := range flags {
				assert.Equal(t, row[j], validator.BetweenObjectLength(obj, 3, 5, f[0], f[1]), "len=%d gt=%v lt=%v", len(obj), f[0], f[1])
			}
		}
	})
}

func TestCallback(t *testing.T) {
	isAAA := func(args ...any) bool {
		s, ok := args[0].(string)
		return ok && s == "aaa"
	}

	assert.False(t, validator.Callback(isAAA, "aaaa"))
	assert.True(t, validator.Callback(isAAA, "aaa"))
	assert.Equal(t, 3, validator.Callback(func(args ...any) int { return len(args) }, 1, 2, 3))
	assert.Nil(t, validator.Callback[[]string](nil, "x"))
}
