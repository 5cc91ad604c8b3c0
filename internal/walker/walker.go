// Package walker ties internal/heading's dispatch tables to
// internal/section's rule implementations, turning one parsed Wiktionary
// entry into the complete list of edges it contributes (original
// `ConceptNetWiktionarySemantics.parse_structured_entry` /
// `parse_structured_section`).
package walker

import (
	"fmt"
	"log/slog"

	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/edgeuri"
	"github.com/conceptgraph/wiktsem/internal/handlers"
	"github.com/conceptgraph/wiktsem/internal/heading"
	"github.com/conceptgraph/wiktsem/internal/langnames"
	"github.com/conceptgraph/wiktsem/internal/section"
	"github.com/conceptgraph/wiktsem/internal/titleindex"
)

// Walker extracts edges from structured Wiktionary entries belonging to one
// Wiktionary edition (e.g. en.wiktionary.org or de.wiktionary.org).
type Walker struct {
	Oracle          titleindex.Oracle
	EditionLanguage string
	Logger          *slog.Logger
}

// New builds a Walker for the given edition language, backed by oracle for
// definition-section language disambiguation.
func New(oracle titleindex.Oracle, editionLanguage string, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{Oracle: oracle, EditionLanguage: editionLanguage, Logger: logger}
}

// WalkEntry extracts every edge from one entry. An entry in a skipped
// language, or whose language name doesn't resolve to a known code,
// contributes nothing. A single section's parse failure is logged and
// tolerated; a second failure in the same entry is fatal (original
// `assert failures <= 1`).
func (w *Walker) WalkEntry(entry StructuredEntry) ([]edgeuri.Edge, error) {
	if heading.IsSkippedLanguage(entry.Language) {
		return nil, nil
	}
	headLang, ok := langnames.Code(entry.Language)
	if !ok {
		return nil, nil
	}

	var edges []edgeuri.Edge
	failures := 0
	for _, s := range entry.Sections {
		es, err := w.walkSection(s, headLang, entry.Title, nil)
		if err != nil {
			failures++
			w.Logger.Error("section extraction failed",
				"title", entry.Title, "language", headLang, "heading", s.Heading, "error", err)
			if failures > 1 {
				return nil, fmt.Errorf("wiktparse: too many failed sections in %q (%s): %w", entry.Title, headLang, err)
			}
			continue
		}
		edges = append(edges, es...)
	}
	return edges, nil
}

// walkSection extracts one section's own edges, then recurses into its
// subsections with whatever part-of-speech context this section
// established. Heading text always follows the conventions of the
// Wiktionary edition hosting the entry (an English-language Wiktionary page
// about a German word still has a "Noun"/"Etymology" heading, never
// "Substantiv"/"Herkunft"), so both the heading→rule dispatch and the POS a
// heading establishes are keyed by the edition language.
func (w *Walker) walkSection(s StructuredSection, headLang, headWord string, headPos *string) ([]edgeuri.Edge, error) {
	pos := headPos
	if p, ok := heading.POSForHeading(w.EditionLanguage, s.Heading); ok && pos == nil {
		pos = &p
	}

	var edges []edgeuri.Edge
	if dispatch, ok := heading.RuleForHeading(w.EditionLanguage, s.Heading); ok && dispatch.Rule != "" {
		own, err := w.runRule(dispatch, s.Text, headLang, headWord, pos)
		if err != nil {
			return nil, err
		}
		edges = own
	}

	for _, sub := range s.Sections {
		subEdges, err := w.walkSection(sub, headLang, headWord, pos)
		if err != nil {
			return nil, err
		}
		edges = append(edges, subEdges...)
	}
	return edges, nil
}

// runRule runs one section rule and resolves every resulting EdgeInfo into
// a complete edge, dropping any whose target is a blacklisted placeholder
// or whose language could never be resolved (original's final list-comp
// filter: "if ei.target not in BAD_NAMES_FOR_THINGS and ei.language is not
// None"). A heading's default relation only fills an edge that didn't
// already pick one for itself (e.g. a {{compound}} inside an "Etymology"
// section keeps its own DerivedFrom rather than being overwritten with
// EtymologicallyDerivedFrom).
func (w *Walker) runRule(dispatch heading.Dispatch, text, headLang, headWord string, headPos *string) ([]edgeuri.Edge, error) {
	ctx := handlers.Context{DefaultLanguage: w.EditionLanguage}

	var infos []ast.EdgeInfo
	var err error
	resolution := resolveDefault

	switch dispatch.Rule {
	case heading.RuleTranslation:
		infos, err = section.Translation(ctx, text)
	case heading.RuleTranslationDE:
		infos, err = section.TranslationDE(w.EditionLanguage, text)
	case heading.RuleLink:
		infos, err = section.Link(ctx, text)
	case heading.RuleEtymology:
		infos, err = section.Etymology(ctx, text)
	case heading.RuleEtymologyDE:
		infos, err = section.EtymologyDE(ctx, text)
	case heading.RuleDefinition:
		infos, err = section.Definition(ctx, text)
		resolution = resolveOracle
	case heading.RuleDefinitionDE:
		infos, err = section.DefinitionDE(ctx, text)
	default:
		return nil, fmt.Errorf("wiktparse: unrecognized rule %q", dispatch.Rule)
	}
	if err != nil {
		return nil, err
	}

	if dispatch.Relation != "" {
		for i := range infos {
			if infos[i].Relation == nil {
				infos[i] = infos[i].SetRelation(dispatch.Relation)
			}
		}
	}

	edges := make([]edgeuri.Edge, 0, len(infos))
	for _, info := range infos {
		resolved, err := w.resolveLanguage(info, headLang, resolution)
		if err != nil {
			return nil, err
		}
		if resolved.Language == nil || ast.IsBadName(resolved.Target) {
			continue
		}
		edges = append(edges, resolved.CompleteEdge(string(dispatch.Rule), headLang, headWord, headPos))
	}
	return edges, nil
}

// languageResolution picks how resolveLanguage fills in an EdgeInfo whose
// rule left its language nil.
type languageResolution int

const (
	// resolveDefault fills in the entry's own head language unconditionally.
	resolveDefault languageResolution = iota
	// resolveOracle disambiguates between the edition's language and the
	// entry's head language by checking which one the target is a known
	// title in.
	resolveOracle
)

// resolveLanguage fills in an EdgeInfo's language when its rule didn't
// already set one. A bare wiki link already carries the edition's language
// and returns unchanged here; a definition_section EdgeInfo that arrives
// with no language (e.g. {{term}} without lang=, or a [[#Language|...]] link
// whose name doesn't resolve) is ambiguous between the edition's own
// language and the entry's head language, so the titleindex.Oracle is
// always consulted to pick one (original
// `disambiguate_language`) — even when the two candidate languages happen to
// be equal, since the oracle can still legitimately have no entry for the
// target and the edge must then be dropped rather than resolved by default.
// definition_section_de never goes through the oracle at all: its "target"
// is a whole rendered gloss sentence rather than a real wiki-link title, so
// a title lookup for it would never hit and would otherwise drop every
// German definition edge outright; every other rule simply defaults to the
// entry's head language.
func (w *Walker) resolveLanguage(info ast.EdgeInfo, headLang string, resolution languageResolution) (ast.EdgeInfo, error) {
	if info.Language != nil {
		return info, nil
	}
	if resolution != resolveOracle {
		return info.SetDefaultLanguage(headLang), nil
	}

	candidates := []string{w.EditionLanguage, headLang}
	resolved, err := titleindex.Disambiguate(w.Oracle, candidates, info.Target)
	if err != nil {
		return info, err
	}
	if resolved == "" {
		return info, nil
	}
	return info.SetDefaultLanguage(resolved), nil
}
