package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translator resolves message keys against per-language catalogs.
// It is safe for concurrent use.
type Translator struct {
	catalogs       map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads catalogs from adapter and applies options.
func NewTranslator(ctx context.Context, adapter CatalogAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	catalogs, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateCatalogs(catalogs); err != nil {
		return nil, err
	}

	t.catalogs = catalogs
	t.logger.DebugContext(ctx, "message catalogs loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateCatalogs(catalogs map[string]map[string]any) error {
	if len(catalogs) == 0 {
		t.logger.Warn("no message catalogs provided")
		return nil
	}

	for lang, messages := range catalogs {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if messages == nil {
			return fmt.Errorf("%w: %s", ErrNilCatalog, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the languages that have a catalog, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a lookup names no catalog.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language closest to requested, or the
// translator's default language.
func (t *Translator) Match(requested string) string {
	return MatchLanguage(requested, t.SupportedLanguages(), t.defaultLang)
}

// lookup traverses nested catalogs using dot-separated keys:
// "validation.min.number" reads m["validation"]["min"]["number"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		switch nested := next.(type) {
		case map[string]any:
			current = nested
		case map[any]any:
			current = make(map[string]any, len(nested))
			for k, v := range nested {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// HasTranslation reports whether lang's catalog defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.catalogs[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// Placeholders use the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format substitutes %{key} placeholders from args given as key, value pairs.
// Unknown placeholders are kept; an odd trailing argument is ignored.
func format(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting args given as key, value pairs:
//
//	// "validation.min.number": "%{name} must be at least %{limit}"
//	t.T("en", "validation.min.number", "name", "age", "limit", "18")
//	// "age must be at least 18"
//
// A lang without a catalog falls back to the default language. A missing key
// yields the key itself when fallback to key is enabled, otherwise "".
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.catalogs[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		messages, ok = t.catalogs[t.defaultLang]
	}

	if ok {
		if val, found := lookup(messages, key); found {
			switch v := val.(type) {
			case string:
				return format(v, args)
			case fmt.Stringer:
				return format(v.String(), args)
			}
			if t.missingLogMode {
				t.logger.Warn("message is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
			}
		} else if t.missingLogMode {
			t.logger.Warn("message not found", "lang", lang, "key", key)
		}
	}

	if t.fallbackToKey {
		return format(key, args)
	}
	return ""
}

// Td translates key like T but returns defaultValue, formatted with args,
// when no message is found.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	messages, ok := t.catalogs[lang]
	t.mu.RUnlock()
	if !ok {
		return format(defaultValue, args)
	}

	val, ok := lookup(messages, key)
	if !ok {
		return format(defaultValue, args)
	}
	s, ok := val.(string)
	if !ok {
		return format(defaultValue, args)
	}
	return format(s, args)
}
