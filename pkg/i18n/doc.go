// Package i18n resolves message keys against per-language catalogs.
//
// A Translator is built from a CatalogAdapter. MapAdapter serves catalogs
// from memory, FileAdapter reads one JSON or YAML file, and FSAdapter merges
// every supported file of a directory in an fs.FS such as an embed.FS.
// Catalog files are keyed by language at the top level and may nest message
// keys:
//
//	en:
//	  validation:
//	    min:
//	      number: "%{name} must be at least %{limit}"
//
// Keys are looked up with dots ("validation.min.number") and placeholders of
// the form %{name} are replaced from key, value argument pairs:
//
//	t, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter(i18n.NewYAMLParser(), "messages.yaml"))
//	if err != nil {
//	    return err
//	}
//	t.T("en", "validation.min.number", "name", "age", "limit", "18")
//	// age must be at least 18
//
// Bundled exposes the English and Japanese validation messages embedded in
// the package and Default returns a shared translator over them.
//
// Match and MatchLanguage pick the closest supported catalog for a BCP 47
// tag using golang.org/x/text/language, so "ja-JP" resolves to "ja".
//
// The Translator is safe for concurrent use.
package i18n
