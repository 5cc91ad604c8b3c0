// Package langnames maps the English-language names Wiktionary uses for
// languages (as they appear in wiki_link hash references, {{etyl}} template
// arguments, and the Wiktionary edition a page belongs to) to the short
// codes the rest of this module uses for concept URIs. Grounded on the
// original implementation's ENGLISH_NAME_TO_CODE table
// (conceptnet5.util.language_codes), trimmed to the languages this module's
// example scenarios actually exercise. Code reports an unrecognized name
// with ok=false (CodeOrEmpty returns ""); each caller decides what that
// means: the walker skips an entry whose language is unknown, a
// [[target#Language]] link drops its edge, and a [[#Language|text]] link
// keeps its edge with no language.
package langnames

import "strings"

var englishNameToCode = map[string]string{
	"english":    "en",
	"german":     "de",
	"french":     "fr",
	"spanish":    "es",
	"italian":    "it",
	"portuguese": "pt",
	"dutch":      "nl",
	"russian":    "ru",
	"japanese":   "ja",
	"mandarin":   "zh",
	"chinese":    "zh",
	"korean":     "ko",
	"latin":      "la",
	"greek":      "el",
	"swedish":    "sv",
	"norwegian":  "no",
	"danish":     "da",
	"polish":     "pl",
	"turkish":    "tr",
	"arabic":     "ar",
	"hindi":      "hi",
	"finnish":    "fi",
	"hungarian":  "hu",
	"czech":      "cs",
	"romanian":   "ro",
	"vietnamese": "vi",
	"thai":       "th",
	"hebrew":     "he",
	"icelandic":  "is",
	"irish":      "ga",
	"welsh":      "cy",
	"esperanto":  "eo",
	"old english":  "ang",
	"old norse":    "non",
	"middle english": "enm",
	"proto-germanic": "gem-pro",
}

// Code returns the short language code for an English-language name
// (case-insensitive, surrounding whitespace ignored), and false if the name
// is not recognized.
func Code(name string) (string, bool) {
	code, ok := englishNameToCode[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// CodeOrEmpty is Code without the ok flag, for callers that treat an
// unrecognized name the same as no language at all.
func CodeOrEmpty(name string) string {
	code, _ := Code(name)
	return code
}
