// Package i18n defines the supported site languages and tag matching.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	korean  = language.MustParse("ko-KR")
	english = language.MustParse("en-US")

	supported = []language.Tag{korean, english}
	matcher   = language.NewMatcher(supported)
)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return korean
}

// ParseTag resolves value to a supported tag. Unknown or unparsable values
// report false.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supportedFor(matched), true
}

// MatchTags picks the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	matched, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedFor(matched)
}

// supportedFor strips matcher extensions so callers always get one of the
// SupportedTags values.
func supportedFor(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, candidate := range supported {
		if b, _ := candidate.Base(); b == base {
			return candidate
		}
	}
	return DefaultTag()
}
