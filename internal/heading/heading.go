// Package heading holds the per-Wiktionary-edition tables that decide what
// a section heading means: which part-of-speech it names, which rule
// parses its body, and what relation (if any) that rule's edges default
// to. Grounded directly on the original implementation's POS_HEADINGS,
// SKIPPED_LANGUAGES and RULES_AND_RELATIONS_MAP constants.
package heading

import "strings"

// Rule names a section-body parser in internal/section. The zero value
// Rule("") means "this heading is recognized but carries no edges" (e.g.
// "Pronunciation"), distinct from a heading not being in the table at all.
type Rule string

const (
	RuleTranslation   Rule = "translation_section"
	RuleTranslationDE Rule = "translation_section_de"
	RuleLink          Rule = "link_section"
	RuleEtymology     Rule = "etymology_section"
	RuleEtymologyDE   Rule = "etymology_section_de"
	RuleDefinition    Rule = "definition_section"
	RuleDefinitionDE  Rule = "definition_section_de"
)

// Dispatch is what a heading resolves to: a rule and the relation (if any)
// its edges should carry by default.
type Dispatch struct {
	Rule     Rule
	Relation string
}

// posHeadings maps, per edition, a section heading to the POS code it
// establishes for every section nested beneath it.
var posHeadings = map[string]map[string]string{
	"en": {
		"Noun":        "n",
		"Proper noun": "n",
		"Verb":        "v",
		"Adjective":   "a",
		"Adverb":      "r",
	},
	"de": {
		"Substantiv": "n",
		"Eigenname":  "n",
		"Nachname":   "n",
		"Vorname":    "n",
		"Toponym":    "n",
		"Verb":       "v",
		"Adjektiv":   "a",
		"Adverb":     "r",
	},
}

// skippedLanguages names entry-level languages whose entries are skipped
// entirely: Lojban and English metalanguage mixes aren't useful to parse,
// "Translingual" is too unspecific, and American Sign Language doesn't
// represent well in a text-based concept name.
var skippedLanguages = map[string]struct{}{
	"Lojban":                  {},
	"Translingual":            {},
	"American Sign Language":  {},
}

// rulesAndRelations maps, per edition, a section heading to its Dispatch.
var rulesAndRelations = map[string]map[string]Dispatch{
	"en": {
		"Translations":  {RuleTranslation, ""},
		"Synonyms":      {RuleLink, "Synonym"},
		"Antonyms":      {RuleLink, "Antonym"},
		"Hypernyms":     {RuleLink, "IsA"},
		"Hyponyms":      {RuleLink, "~IsA"},
		"Holonyms":      {RuleLink, "PartOf"},
		"Meronyms":      {RuleLink, "PartOf"},
		"Derived terms": {RuleLink, "~DerivedFrom"},
		"Descendants":   {RuleLink, "~DerivedFrom"},
		"Compounds":     {RuleLink, "~CompoundDerivedFrom"},
		"Related terms": {RuleLink, "RelatedTo"},
		"See also":      {RuleLink, "RelatedTo"},
		"Pronunciation": {"", ""},
		"Anagrams":      {"", ""},
		"Statistics":    {"", ""},
		"References":    {"", ""},
		"Quotations":    {"", ""},
		"Romanization":  {"", ""},
		"Usage notes":   {"", ""},
	},
	"de": {
		"Bedeutungen":         {RuleDefinitionDE, ""},
		"Übersetzungen":       {RuleTranslationDE, ""},
		"Herkunft":            {RuleEtymology, "EtymologicallyDerivedFrom"},
		"Ähnlichkeiten":       {RuleLink, "RelatedTo"},
		"Sinnverwandte Wörter": {RuleLink, "RelatedTo"},
		"Gegenwörter":         {RuleLink, "Antonym"},
		"Synonyme":            {RuleLink, "Synonym"},
		"Oberbegriffe":        {RuleLink, "IsA"},
		"Unterbegriffe":       {RuleLink, "~IsA"},
		"Wortbildungen":       {RuleLink, "~DerivedFrom"},
	},
}

// RuleForHeading resolves a heading to its Dispatch for the given edition
// language. The English edition has two special cases the table alone
// can't express: any heading starting with "Etymology" always means
// etymology_section, and any heading the table doesn't otherwise recognize
// falls back to definition_section (original `_get_rule_for_heading`).
func RuleForHeading(editionLang, heading string) (Dispatch, bool) {
	table, ok := rulesAndRelations[editionLang]
	if !ok {
		return Dispatch{}, false
	}

	if editionLang == "en" {
		if strings.HasPrefix(heading, "Etymology") {
			return Dispatch{Rule: RuleEtymology, Relation: "EtymologicallyDerivedFrom"}, true
		}
		if d, ok := table[heading]; ok {
			return d, true
		}
		return Dispatch{Rule: RuleDefinition}, true
	}

	d, ok := table[heading]
	return d, ok
}

// POSForHeading reports the part-of-speech code a heading establishes, if
// any.
func POSForHeading(editionLang, heading string) (string, bool) {
	langTable, ok := posHeadings[editionLang]
	if !ok {
		return "", false
	}
	pos, ok := langTable[heading]
	return pos, ok
}

// IsSkippedLanguage reports whether entries in this entry-level language
// name should be skipped entirely.
func IsSkippedLanguage(name string) bool {
	_, ok := skippedLanguages[name]
	return ok
}
