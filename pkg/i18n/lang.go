package i18n

import "golang.org/x/text/language"

// DefaultLanguage is used when no supported language matches a request.
const DefaultLanguage = "en"

// MatchLanguage picks the entry of supported closest to requested using
// BCP 47 matching ("ja-JP" selects "ja", "en-GB" selects "en"). It returns
// fallback when requested is empty or unparsable, or nothing is close enough.
func MatchLanguage(requested string, supported []string, fallback string) string {
	if requested == "" || len(supported) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return names[idx]
}
