package i18n

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed locales/*.yaml
var locales embed.FS

var (
	defaultOnce       sync.Once
	defaultTranslator *Translator
	defaultErr        error
)

// Bundled returns an adapter over the catalogs shipped with the package
// ("en" and "ja" validation messages).
func Bundled() CatalogAdapter {
	return NewFSAdapter(NewYAMLParser(), locales, "locales")
}

// Default returns a process-wide translator over the bundled catalogs.
// It is built on first use and panics if the bundled files are broken.
func Default() *Translator {
	defaultOnce.Do(func() {
		defaultTranslator, defaultErr = NewTranslator(context.Background(), Bundled(), WithNoLogging())
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("i18n: bundled catalogs: %v", defaultErr))
	}
	return defaultTranslator
}
