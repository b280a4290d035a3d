package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

// FromJSON decodes a JSON object into a record.
//
// Values keep JSON's shapes: integral numbers that fit in int64 become int64,
// other numbers float64, arrays []any, objects map[string]any and null nil.
// Strings are never converted to numbers.
func FromJSON(data []byte) (validator.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data))
}

// FromJSONPath decodes the object found at a gjson path, such as
// "payload.user" or "items.0".
func FromJSONPath(data []byte, path string) (validator.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	return fromResult(res)
}

func fromResult(res gjson.Result) (validator.Record, error) {
	if !res.IsObject() {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, res.Type)
	}
	obj, _ := jsonValue(res).(map[string]any)
	return validator.Record(obj), nil
}

func jsonValue(res gjson.Result) any {
	switch res.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if i, err := strconv.ParseInt(res.Raw, 10, 64); err == nil {
			return i
		}
		return res.Float()
	case gjson.String:
		return res.String()
	case gjson.JSON:
		if res.IsArray() {
			items := res.Array()
			out := make([]any, len(items))
			for i, item := range items {
				out[i] = jsonValue(item)
			}
			return out
		}
		out := make(map[string]any)
		res.ForEach(func(key, value gjson.Result) bool {
			out[key.String()] = jsonValue(value)
			return true
		})
		return out
	default:
		return nil
	}
}

// FromYAML decodes a YAML mapping into a record. Nested mappings become
// map[string]any; non-string keys are formatted with fmt.
func FromYAML(data []byte) (validator.Record, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}
	obj, ok := yamlValue(root).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, root)
	}
	return validator.Record(obj), nil
}

func yamlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = yamlValue(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = yamlValue(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = yamlValue(item)
		}
		return t
	default:
		return v
	}
}

// FromFile reads a JSON or YAML record, choosing the decoder by extension.
func FromFile(path string) (validator.Record, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	var decode func([]byte) (validator.Record, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = FromJSON
	case ".yaml", ".yml":
		decode = FromYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return decode(content)
}
