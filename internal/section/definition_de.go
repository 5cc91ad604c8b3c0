package section

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/handlers"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// DefinitionDE parses a German "Bedeutungen" section body (original
// `definition_section_de`). Unlike the English definition handler, which
// only keeps the EdgeInfo found nested inside a gloss's own wiki links,
// the German rule treats the whole rendered gloss line as the edge's
// target — the original appends the line's own `LinkedText` to its result
// list rather than that LinedText's `.links`, which works because the
// caller gives definition_section_de's edges the entry's head language
// directly instead of looking the gloss up in the title oracle (see
// `internal/walker`'s `resolveLanguage`). Each line is tagged with a running sense number; a
// lowercase "a" sub-sense appends its letter to the current digit sense and
// derives a shared `head_text` from the *previous* line's rendered target,
// stripped of its leading "(sense) "-style punctuation — it does not
// remove that previous edge from the result, so a "1"/"1a"/"2" run keeps
// all three edges rather than the two a `links.pop()` reading of the
// original would leave. A leading "a" with no previous line to draw
// head-text from is dropped rather than crashing on an empty pop.
func DefinitionDE(ctx handlers.Context, body string) ([]ast.EdgeInfo, error) {
	parsed, err := wikigrammar.ParseGermanDefinitionSection(body)
	if err != nil {
		return nil, err
	}

	var edges []ast.EdgeInfo
	sense := ""
	headText := ""
	lastTarget := ""
	hasPrev := false

	for _, line := range parsed.Lines {
		num := ""
		items := line.Items
		switch {
		case line.LBrk != nil:
			// Bracketed form "[1]": the closing bracket stops the Term run,
			// so NumRaw already holds exactly the marker.
			if line.NumRaw != nil {
				num = strings.TrimSpace(*line.NumRaw)
			}
		case line.NumRaw != nil:
			// Unbracketed sub-sense form ":a rest of line" — the original
			// grammar's `num` is a single character (dash or [0-9a-e]), but
			// nothing in the lexer's Term pattern stops at that boundary
			// when no bracket follows, so NumRaw swallows the marker and
			// the rest of the line together. Peel the marker off by hand.
			raw := *line.NumRaw
			r, size := utf8.DecodeRuneInString(raw)
			if size > 0 && isSubSenseMarker(r) {
				num = string(r)
				rest := strings.TrimPrefix(raw[size:], " ")
				if rest != "" {
					items = append([]*wikigrammar.Inline{{Text: &rest}}, items...)
				}
			}
		}

		currSense := sense
		switch {
		case isAllDigits(num):
			sense = num
			currSense = sense
			headText = ""
		case num == "a":
			if !hasPrev {
				continue
			}
			headText = strings.TrimLeft(lastTarget, "()0123456789 ") + " "
			currSense = sense + num
		case isAllAlpha(num):
			currSense = sense + num
		}

		gloss := handlers.EvalInlines(ctx, items)
		target := "(" + currSense + ") " + headText + strings.TrimLeft(gloss.Text, " ")

		edges = append(edges, ast.NewEdgeInfo(nil, target, ptr(currSense), nil))
		lastTarget = target
		hasPrev = true
	}

	return edges, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isAllAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// isSubSenseMarker reports whether r can open an unbracketed definition
// line (original `num:( dash | ?/[0-9a-e]/? )`).
func isSubSenseMarker(r rune) bool {
	return r == '-' || unicode.IsDigit(r) || (r >= 'a' && r <= 'e')
}
