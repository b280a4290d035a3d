package main

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/dmitrymomot/rulecheck/pkg/ruleset"
	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

// builtinCallbacks returns the callbacks rule files may reference by name.
func builtinCallbacks() *ruleset.Registry {
	reg := ruleset.NewRegistry()
	reg.MustRegister("not_blank", notBlank)
	reg.MustRegister("unique", unique)
	return reg
}

// notBlank rejects strings made only of white space.
func notBlank(value any, name string) any {
	s, ok := value.(string)
	if !ok || strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
		return []string{}
	}
	return []string{name + " must not be blank"}
}

// unique rejects arrays holding the same element twice. Elements compare
// like validator.InArray: numbers by value, everything else strictly.
func unique(value any, name string) any {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return []string{}
	}

	seen := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		if validator.InArray(elem, seen) {
			return []string{fmt.Sprintf("%s must not contain duplicates (%v)", name, elem)}
		}
		seen = append(seen, elem)
	}
	return []string{}
}
