package ruleset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/rulecheck/pkg/validator"
)

// Decode parses content with parser and converts it into a rule set.
// Callback names are resolved through reg, which may be nil when the
// document uses no callbacks.
func Decode(ctx context.Context, parser Parser, content []byte, reg *Registry) (validator.RuleSet, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return doc.RuleSet(reg)
}

// LoadFile reads a JSON or YAML rule set, choosing the parser by extension.
func LoadFile(ctx context.Context, path string, reg *Registry) (validator.RuleSet, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return Decode(ctx, parser, content, reg)
}
