package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes a catalog document into messages keyed by language.
type Parser interface {
	// Parse returns language -> nested message map.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext
	// (with or without the leading dot).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser chosen by the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
