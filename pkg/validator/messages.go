package validator

import (
	"strconv"

	"github.com/dmitrymomot/rulecheck/pkg/i18n"
)

// Catalog keys for engine messages. Placeholders: %{name}, %{limit}.
const (
	KeyMissing          = "validation.missing"
	KeyInvalidType      = "validation.invalid_type"
	KeyBoolean          = "validation.boolean"
	KeyPattern          = "validation.pattern"
	KeyMinString        = "validation.min.string"
	KeyMinNumber        = "validation.min.number"
	KeyMinElements      = "validation.min.elements"
	KeyMaxString        = "validation.max.string"
	KeyMaxNumber        = "validation.max.number"
	KeyMaxElements      = "validation.max.elements"
	KeyCallbackMissing  = "validation.callback.missing"
	KeyCallbackNotArray = "validation.callback.not_array"
)

type messages struct {
	tr   *i18n.Translator
	lang string
}

func (m messages) text(key, name string) string {
	return m.tr.T(m.lang, key, "name", name)
}

func formatLimit(limit float64) string {
	return strconv.FormatFloat(limit, 'f', -1, 64)
}

// limitMessage picks the template from the value's runtime kind, not from
// the rule type. Unrecognised kinds get an empty message.
func (m messages) limitMessage(value any, limit float64, name, stringKey, numberKey, elementsKey string) string {
	var key string
	switch {
	case IsString(value):
		key = stringKey
	case IsNumber(value):
		key = numberKey
	case IsArray(value), IsObject(value):
		key = elementsKey
	case IsBoolean(value):
		return m.text(KeyBoolean, name)
	default:
		return ""
	}
	return m.tr.T(m.lang, key, "name", name, "limit", formatLimit(limit))
}

func (m messages) min(value any, limit float64, name string) string {
	return m.limitMessage(value, limit, name, KeyMinString, KeyMinNumber, KeyMinElements)
}

func (m messages) max(value any, limit float64, name string) string {
	return m.limitMessage(value, limit, name, KeyMaxString, KeyMaxNumber, KeyMaxElements)
}
