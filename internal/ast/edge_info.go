package ast

import (
	"strings"

	"github.com/conceptgraph/wiktsem/internal/edgeuri"
)

// BadNamesForThings is the blacklist of placeholder/junk surface forms that
// should never become a sense or a target. Values follow the kind of
// filler words Wiktionary's own templates emit when a sense or gloss
// couldn't be determined.
var BadNamesForThings = map[string]struct{}{
	"":               {},
	"something":      {},
	"somebody":       {},
	"someone":        {},
	"some":           {},
	"unknown":        {},
	"none":           {},
	"n/a":            {},
	"to do":          {},
	"todo":           {},
	"rfdef":          {},
	"rfv-sense":      {},
	"this":           {},
	"that":           {},
	"it":             {},
}

// isBadName reports whether s (case-insensitively) is on the blacklist.
func isBadName(s string) bool {
	_, bad := BadNamesForThings[strings.ToLower(strings.TrimSpace(s))]
	return bad
}

// IsBadName is isBadName, exported for internal/walker's target-level
// filtering — the same blacklist applies to both senses and targets.
func IsBadName(s string) bool {
	return isBadName(s)
}

// EdgeInfo is a partially-resolved edge awaiting head-language/head-word/
// head-POS context. It is immutable: every "setter" returns a modified
// copy.
type EdgeInfo struct {
	Language *string
	Target   string
	Sense    *string
	Relation *string
}

// NewEdgeInfo constructs an EdgeInfo. Constructing with an empty target is a
// programmer error and panics immediately.
func NewEdgeInfo(language *string, target string, sense, relation *string) EdgeInfo {
	if target == "" {
		panic("ast: EdgeInfo constructed with empty target")
	}
	return EdgeInfo{Language: language, Target: target, Sense: sense, Relation: relation}
}

// Simple is a convenience constructor for the common (language, target) case
// with no sense or relation set.
func Simple(language, target string) EdgeInfo {
	return NewEdgeInfo(strPtr(language), target, nil, nil)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SetLanguage returns a copy with Language replaced unconditionally.
func (e EdgeInfo) SetLanguage(language string) EdgeInfo {
	l := language
	return EdgeInfo{Language: &l, Target: e.Target, Sense: e.Sense, Relation: e.Relation}
}

// SetDefaultLanguage fills Language only if it is currently nil; it is a
// no-op once a language has already been set.
func (e EdgeInfo) SetDefaultLanguage(language string) EdgeInfo {
	if e.Language != nil {
		return e
	}
	return e.SetLanguage(language)
}

// SetTarget returns a copy with Target replaced.
func (e EdgeInfo) SetTarget(target string) EdgeInfo {
	return NewEdgeInfo(e.Language, target, e.Sense, e.Relation)
}

// SetSense returns a copy with Sense replaced.
func (e EdgeInfo) SetSense(sense *string) EdgeInfo {
	return EdgeInfo{Language: e.Language, Target: e.Target, Sense: sense, Relation: e.Relation}
}

// SetRelation returns a copy with Relation replaced.
func (e EdgeInfo) SetRelation(relation string) EdgeInfo {
	r := relation
	return EdgeInfo{Language: e.Language, Target: e.Target, Sense: e.Sense, Relation: &r}
}

// CompleteEdge resolves relation inversion, builds normalized URIs, and
// emits a serialized edge record.
func (e EdgeInfo) CompleteEdge(ruleName, headLang, headWord string, headPos *string) edgeuri.Edge {
	var sense *string
	if headPos != nil {
		sense = e.Sense
	}
	if sense != nil && isBadName(*sense) {
		sense = nil
	}

	pos := ""
	if headPos != nil {
		pos = *headPos
	}
	senseStr := ""
	if sense != nil {
		senseStr = *sense
	}

	startURI := edgeuri.ConceptURI(headLang, headWord, pos, senseStr)
	targetLang := ""
	if e.Language != nil {
		targetLang = *e.Language
	}
	endURI := edgeuri.ConceptURI(targetLang, e.Target, "", "")

	rel := "RelatedTo"
	if e.Relation != nil && *e.Relation != "" {
		rel = *e.Relation
	}
	if strings.HasPrefix(rel, "~") {
		rel = strings.TrimPrefix(rel, "~")
		startURI, endURI = endURI, startURI
	}

	return edgeuri.Edge{
		RelationURI: edgeuri.RelationURI(rel),
		StartURI:    startURI,
		EndURI:      endURI,
		Dataset:     edgeuri.DatasetURI(headLang),
		License:     edgeuri.CCSharealike,
		Sources: []string{
			edgeuri.WebSourceURI(headWord),
			edgeuri.RuleSourceURI(ruleName),
		},
		Weight: edgeuri.Weight,
	}
}
