package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNew(t *testing.T) {
	tests := []struct {
		input     string
		lang      string
		direction string
	}{
		{input: "en", lang: "en", direction: "ltr"},
		{input: "he", lang: "he", direction: "rtl"},
		{input: " AR ", lang: "ar", direction: "rtl"},
		{input: "he-IL", lang: "he", direction: "rtl"},
		{input: "fr", lang: "en", direction: "ltr"},
		{input: "", lang: "en", direction: "ltr"},
		{input: "!!", lang: "en", direction: "ltr"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tr := New(tt.input)
			if tr.Lang() != tt.lang {
				t.Errorf("New(%q).Lang() = %s, expected %s", tt.input, tr.Lang(), tt.lang)
			}
			if tr.Direction() != tt.direction {
				t.Errorf("New(%q).Direction() = %s, expected %s", tt.input, tr.Direction(), tt.direction)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"he-IL,he;q=0.9,en;q=0.5", "he"},
		{"ar-EG", "ar"},
		{"en-GB,en;q=0.8", "en"},
		{"de-DE", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Match(tt.input); got != tt.expected {
				t.Errorf("Match(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	he := New("he")
	if got := he.T("interest"); got != "ריבית" {
		t.Errorf("he interest = %s", got)
	}
	// Hebrew has no method labels and falls back to English.
	if got := he.T("balloonMethod"); got != "Balloon Payment" {
		t.Errorf("he balloonMethod = %s, expected English fallback", got)
	}
	if got := he.T("doesNotExist"); got != "doesNotExist" {
		t.Errorf("unknown key = %s, expected the key itself", got)
	}
	if New("en").Tag() != language.English {
		t.Errorf("unexpected English tag %s", New("en").Tag())
	}
}

func TestLabelsCoverEveryKey(t *testing.T) {
	for _, lang := range Languages() {
		labels := New(lang).Labels()
		for _, key := range Keys() {
			if labels[key] == "" {
				t.Errorf("%s: missing label for %s", lang, key)
			}
		}
	}
}

func TestActions(t *testing.T) {
	for _, lang := range Languages() {
		primary := map[string]bool{}
		for _, action := range New(lang).Actions() {
			if action.Label == "" {
				t.Errorf("%s: action %s has no label", lang, action.Key)
			}
			if action.Primary {
				primary[action.Key] = true
			}
		}
		if len(primary) != 2 || !primary["addLoan"] || !primary["saveLoan"] {
			t.Errorf("%s: primary actions = %v, expected addLoan and saveLoan", lang, primary)
		}
	}
}
