package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorMap holds validation failures keyed by field. Messages for a field
// are kept in the order the checks produced them. A field without an entry
// is valid.
type ErrorMap map[string][]string

// Add appends message to field's list, creating the list on first use.
func (m *ErrorMap) Add(field, message string) {
	if *m == nil {
		*m = make(ErrorMap)
	}
	(*m)[field] = append((*m)[field], message)
}

func (m ErrorMap) Has(field string) bool {
	return len(m[field]) > 0
}

// Get returns the messages recorded for field.
func (m ErrorMap) Get(field string) []string {
	return m[field]
}

// Fields returns the failed fields in sorted order.
func (m ErrorMap) Fields() []string {
	return slices.Sorted(maps.Keys(m))
}

func (m ErrorMap) IsEmpty() bool {
	return len(m) == 0
}

// Clone returns a deep copy.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for field, messages := range m {
		out[field] = slices.Clone(messages)
	}
	return out
}

func (m ErrorMap) Error() string {
	if len(m) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range m.Fields() {
		for _, msg := range m[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns m as an error, or nil when m is empty.
func (m ErrorMap) Err() error {
	if m.IsEmpty() {
		return nil
	}
	return m
}

// AsErrorMap extracts an ErrorMap from err.
func AsErrorMap(err error) (ErrorMap, bool) {
	if err == nil {
		return nil, false
	}
	var m ErrorMap
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	_, ok := AsErrorMap(err)
	return ok
}
