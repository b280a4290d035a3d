package validator

import (
	"regexp"

	"github.com/google/uuid"
)

// Format gates, not authoritative validators: the patterns check structure only.
var (
	japaneseRegex = regexp.MustCompile(`^[\x{30a0}-\x{30ff}\x{3040}-\x{309f}\x{3005}-\x{3006}\x{30e0}-\x{9fcf}]+$`)
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9]+[\w.-]*@[A-Za-z0-9]+[\w.-]+\.[\w.-]+$`)
	urlRegex      = regexp.MustCompile(`^https?(://[-_.!~*¥'()a-zA-Z0-9;¥/?:¥@&=+¥$,%#]+)$`)
)

// IsJapanese reports whether v consists solely of Hiragana, Katakana and
// Kanji characters. Empty and mixed-script strings do not match.
func IsJapanese(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	return japaneseRegex.MatchString(s)
}

// IsEmail reports whether v looks like an e-mail address.
func IsEmail(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsURL reports whether v looks like an http or https URL.
func IsURL(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	return urlRegex.MatchString(s)
}

// IsUUID reports whether v is a string in one of the UUID text forms
// accepted by github.com/google/uuid.
func IsUUID(v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	return uuid.Validate(s) == nil
}
