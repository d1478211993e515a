// Package i18n holds the display labels for each supported language and the
// rules for choosing a language and text direction.
//
// Label lookups never affect calculations; they only decide what text the
// presentation layer shows.
package i18n

import (
	"sort"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"golang.org/x/text/language"
)

// supported is ordered so that index 0 is the fallback language.
var supported = []language.Tag{language.English, language.Hebrew, language.Arabic}

var matcher = language.NewMatcher(supported)

var rtl = map[string]bool{"he": true, "ar": true}

// Action describes a button the presentation layer renders. Intent is carried
// as flags so styling never depends on the translated label text.
type Action struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Primary bool   `json:"primary"`
	Action  bool   `json:"action"`
}

var actions = []Action{
	{Key: "addLoan", Primary: true, Action: true},
	{Key: "saveLoan", Primary: true, Action: true},
	{Key: "showSchedule", Action: true},
	{Key: "hideSchedule", Action: true},
	{Key: "edit"},
	{Key: "remove"},
	{Key: "exportCSV"},
	{Key: "exportExcel"},
}

// Translator resolves label keys for one language.
type Translator struct {
	lang string
	tag  language.Tag
}

// Languages returns the supported language codes in fallback order.
func Languages() []string {
	codes := make([]string, 0, len(supported))
	for _, tag := range supported {
		codes = append(codes, tag.String())
	}
	return codes
}

// Match picks the best supported language for an Accept-Language style
// value such as "he-IL,he;q=0.9,en;q=0.5". Anything unrecognised resolves to
// English.
func Match(preference string) string {
	tags, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(tags) == 0 {
		return constants.DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return constants.DefaultLocale
	}
	return supported[index].String()
}

// New returns a Translator for lang, falling back to English when lang is
// empty or unsupported.
func New(lang string) *Translator {
	code := strings.ToLower(strings.TrimSpace(lang))
	if _, ok := tables[code]; !ok {
		code = Match(code)
	}
	translator := &Translator{lang: code, tag: supported[0]}
	for _, tag := range supported {
		if tag.String() == code {
			translator.tag = tag
		}
	}
	return translator
}

// Lang returns the resolved language code.
func (t *Translator) Lang() string {
	return t.lang
}

// Tag returns the language tag used for number formatting.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// IsRTL reports whether the language is written right to left.
func (t *Translator) IsRTL() bool {
	return rtl[t.lang]
}

// Direction returns "rtl" or "ltr".
func (t *Translator) Direction() string {
	if t.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// T translates key, falling back to English and then to the key itself.
func (t *Translator) T(key string) string {
	if label, ok := tables[t.lang][key]; ok {
		return label
	}
	if label, ok := tables[constants.DefaultLocale][key]; ok {
		return label
	}
	return key
}

// Labels returns every known key translated, English filling the gaps.
func (t *Translator) Labels() map[string]string {
	labels := make(map[string]string, len(tables[constants.DefaultLocale]))
	for _, key := range Keys() {
		labels[key] = t.T(key)
	}
	return labels
}

// Keys returns the label keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(tables[constants.DefaultLocale]))
	for key := range tables[constants.DefaultLocale] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Actions returns the translated buttons with their intent flags.
func (t *Translator) Actions() []Action {
	translated := make([]Action, len(actions))
	for i, action := range actions {
		action.Label = t.T(action.Key)
		translated[i] = action
	}
	return translated
}
