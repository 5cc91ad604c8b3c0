package walker

import (
	"strings"
	"testing"

	"github.com/conceptgraph/wiktsem/internal/titleindex"
)

// English "water" translation.
func TestWalkEntryEnglishTranslation(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "English",
		Title:    "water",
		Sections: []StructuredSection{{
			Heading: "Translations",
			Text:    "{{trans-top|clear liquid H₂O}}\n* French: {{t+|fr|eau|f}}\n{{trans-bottom}}\n",
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1: %+v", len(edges), edges)
	}
	e := edges[0]
	if e.RelationURI != "/r/TranslationOf" {
		t.Errorf("RelationURI = %q", e.RelationURI)
	}
	if e.StartURI != "/c/en/water" {
		t.Errorf("StartURI = %q", e.StartURI)
	}
	if e.EndURI != "/c/fr/eau" {
		t.Errorf("EndURI = %q", e.EndURI)
	}
	found := false
	for _, s := range e.Sources {
		if s == "/s/rule/translation_section" {
			found = true
		}
	}
	if !found {
		t.Errorf("Sources = %v, want one naming translation_section", e.Sources)
	}
}

// English "dog" hypernym.
func TestWalkEntryEnglishHypernym(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "English",
		Title:    "dog",
		Sections: []StructuredSection{{
			Heading: "Hypernyms",
			Text:    "* {{l|en|mammal}}\n",
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1: %+v", len(edges), edges)
	}
	e := edges[0]
	if e.RelationURI != "/r/IsA" || e.StartURI != "/c/en/dog" || e.EndURI != "/c/en/mammal" {
		t.Errorf("edge = %+v", e)
	}
}

// English "dog" hyponym, inverted.
func TestWalkEntryEnglishHyponymInversion(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "English",
		Title:    "dog",
		Sections: []StructuredSection{{
			Heading: "Hyponyms",
			Text:    "* {{l|en|poodle}}\n",
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1: %+v", len(edges), edges)
	}
	e := edges[0]
	if e.RelationURI != "/r/IsA" || e.StartURI != "/c/en/poodle" || e.EndURI != "/c/en/dog" {
		t.Errorf("endpoints should be swapped by ~IsA, got %+v", e)
	}
}

// Compound etymology.
func TestWalkEntryCompoundEtymology(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "English",
		Title:    "blackbird",
		Sections: []StructuredSection{{
			Heading: "Etymology",
			Text:    "{{compound|lang=en|black|bird}}\n",
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2: %+v", len(edges), edges)
	}
	ends := map[string]bool{}
	for _, e := range edges {
		if e.RelationURI != "/r/DerivedFrom" {
			t.Errorf("RelationURI = %q, want /r/DerivedFrom", e.RelationURI)
		}
		ends[e.EndURI] = true
	}
	if !ends["/c/en/black"] || !ends["/c/en/bird"] {
		t.Errorf("ends = %v, want black and bird", ends)
	}
}

// English definition ambiguity resolved by the title oracle.
// A bare (non-hash) wiki link always carries the edition's own default
// language (mirroring the original's wiki_link rule), so
// Walker.resolveLanguage's oracle-backed disambiguation never overrides it
// here — same as the original, where set_default_language is a no-op once
// wiki_link has already filled in a language. The oracle is still present
// to mirror the scenario's setup; what this test actually locks in is that
// the definition edge resolves to the edition language, "en".
func TestWalkEntryDefinitionOracleDisambiguation(t *testing.T) {
	oracle := titleindex.NewMapOracle([2]string{"en", "conversation"})
	w := New(oracle, "en", nil)
	entry := StructuredEntry{
		Language: "English",
		Title:    "chat",
		Sections: []StructuredSection{{
			Heading: "Noun",
			Sections: []StructuredSection{{
				Heading: "Definitions",
				Text:    "# [[conversation]]\n",
			}},
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1: %+v", len(edges), edges)
	}
	if edges[0].EndURI != "/c/en/conversation" {
		t.Errorf("EndURI = %q, want /c/en/conversation", edges[0].EndURI)
	}
}

// resolveLanguage must still consult the oracle when the edition language
// and the entry's head language happen to be equal: an unresolved hash-lead
// link leaves its EdgeInfo with a nil language, and with neither candidate
// (both "en" here) holding the target in the oracle, the edge is dropped
// rather than silently defaulted to the head language.
func TestWalkEntryDefinitionDropsWhenOracleEmptyEvenWithMatchingLanguages(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "English",
		Title:    "chat",
		Sections: []StructuredSection{{
			Heading: "Noun",
			Sections: []StructuredSection{{
				Heading: "Definitions",
				Text:    "# [[#Klingon|river]]\n",
			}},
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 0 {
		t.Fatalf("len(edges) = %d, want 0 (unresolved hash-lead language, empty oracle): %+v", len(edges), edges)
	}
}

// Disambiguate itself (internal/titleindex) is exercised directly in
// titleindex_test.go; this covers a German entry (editionLang != headLang)
// whose definition holds a bare wiki link: the link already carries the
// edition's language, so it keeps "en" even though the oracle is empty and
// never falls back to the head language "de".
func TestWalkEntryDefinitionBareLinkKeepsEditionLanguageWhenOracleSilent(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "German",
		Title:    "Katze",
		Sections: []StructuredSection{{
			Heading: "Substantiv",
			Sections: []StructuredSection{{
				Heading: "Definitions",
				Text:    "# [[cat]]\n",
			}},
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("len(edges) = %d, want 1: %+v", len(edges), edges)
	}
	if edges[0].EndURI != "/c/en/cat" {
		t.Errorf("EndURI = %q, want /c/en/cat (bare wiki links carry the edition's own language)", edges[0].EndURI)
	}
}

// German sub-sense handling.
func TestWalkEntryGermanSubSense(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "de", nil)
	entry := StructuredEntry{
		Language: "German",
		Title:    "Hund",
		Sections: []StructuredSection{{
			Heading: "Bedeutungen",
			Text:    ":[1] meaning one\n:a additional facet\n:[2] meaning two\n",
		}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("len(edges) = %d, want 3: %+v", len(edges), edges)
	}
	// definition_section_de has no POS heading here, so complete_edge drops
	// the sense field from the URI; the "(1)"/"(1a)"/"(2)" markers
	// definition_section_de bakes into each gloss's rendered text are the
	// only surviving, checkable trace of the three distinct senses.
	wantMarkers := []string{"(1)_meaning_one", "(1a)_meaning_one_additional_facet", "(2)_meaning_two"}
	for i, want := range wantMarkers {
		if !strings.Contains(edges[i].EndURI, want) {
			t.Errorf("edges[%d].EndURI = %q, want substring %q", i, edges[i].EndURI, want)
		}
		if edges[i].StartURI != "/c/de/hund" {
			t.Errorf("edges[%d].StartURI = %q, want /c/de/hund", i, edges[i].StartURI)
		}
	}
}

// Skipped/unmapped languages contribute no edges.
func TestWalkEntrySkippedLanguage(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "Translingual",
		Title:    "foo",
		Sections: []StructuredSection{{Heading: "Symbol", Text: "# thing\n"}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("len(edges) = %d, want 0 for skipped language", len(edges))
	}
}

func TestWalkEntryUnmappedLanguage(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "Not A Real Language",
		Title:    "foo",
		Sections: []StructuredSection{{Heading: "Noun", Text: "# thing\n"}},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("len(edges) = %d, want 0 for unmapped language", len(edges))
	}
}

// Entry failure escalation: more than one section failure in a single
// entry is fatal; one alone is tolerated.
func TestWalkEntryToleratesOneSectionFailure(t *testing.T) {
	w := New(titleindex.NewMapOracle(), "en", nil)
	entry := StructuredEntry{
		Language: "English",
		Title:    "foo",
		Sections: []StructuredSection{
			{Heading: "Etymology", Text: "{{unterminated template\n"},
			{Heading: "Hypernyms", Text: "* {{l|en|mammal}}\n"},
		},
	}

	edges, err := w.WalkEntry(entry)
	if err != nil {
		t.Fatalf("WalkEntry should tolerate a single section failure: %v", err)
	}
	if len(edges) != 1 {
		t.Errorf("len(edges) = %d, want 1 (the surviving section)", len(edges))
	}
}
