package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   string
		wantOK bool
	}{
		{value: "ko-KR", want: "ko-KR", wantOK: true},
		{value: "en-US", want: "en-US", wantOK: true},
		{value: "en", want: "en-US", wantOK: true},
		{value: "ko", want: "ko-KR", wantOK: true},
		{value: "fr-FR", want: "ko-KR", wantOK: false},
		{value: "not a tag", want: "ko-KR", wantOK: false},
		{value: "", want: "ko-KR", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if got.String() != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) = %q, %v; want %q, %v", tc.value, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags([]language.Tag{language.English, language.Korean}); got.String() != "en-US" {
		t.Fatalf("MatchTags(en, ko) = %q, want en-US", got)
	}
	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %q, want default", got)
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.French
	if SupportedTags()[0] != DefaultTag() {
		t.Fatal("SupportedTags shares its backing array")
	}
}
