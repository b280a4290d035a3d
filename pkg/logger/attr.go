package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a record field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// RuleType records a rule type name under the key "rule_type".
func RuleType(name string) slog.Attr {
	return slog.String("rule_type", name)
}

// Pattern records a pattern name under the key "pattern".
func Pattern(name string) slog.Attr {
	return slog.String("pattern", name)
}

func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Fields records how many fields were checked under the key "fields".
func Fields(n int) slog.Attr {
	return slog.Int("fields", n)
}

// ErrorCount records the number of failed fields under the key "error_count".
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Source records an input location (file path, URL) under the key "source".
func Source(src string) slog.Attr {
	return slog.String("source", src)
}
