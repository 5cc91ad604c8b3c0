package handlers

import (
	"strings"

	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/langnames"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// EvalInline dispatches a single wikitext item to its handler (original
// `wikitext`'s per-item alternation: template | wiki_link | external_link |
// text).
func EvalInline(ctx Context, in *wikigrammar.Inline) ast.AstValue {
	switch {
	case in == nil:
		return ast.AstValue{}
	case in.Template != nil:
		return EvalTemplate(ctx, in.Template)
	case in.WikiLink != nil:
		return EvalWikiLink(ctx, in.WikiLink)
	case in.ExternalLink != nil:
		return EvalExternalLink(in.ExternalLink)
	case in.Text != nil:
		return ast.Text(*in.Text)
	default:
		return ast.AstValue{}
	}
}

// EvalInlines evaluates a run of wikitext items and folds them into one
// LinkedText (original `join_text`, applied to a parsed `wikitext` list).
func EvalInlines(ctx Context, ins []*wikigrammar.Inline) ast.LinkedText {
	vals := make([]ast.AstValue, 0, len(ins))
	for _, in := range ins {
		vals = append(vals, EvalInline(ctx, in))
	}
	return ast.JoinText(vals)
}

// EvalWikiLink resolves a [[...]] link (original `wiki_link`). A
// site-qualified link (e.g. "w:Article") is off-Wiktionary and contributes
// no edge, only its display text. A hash-led or hash-suffixed target names
// the language of the linked word via that language's section heading.
func EvalWikiLink(ctx Context, w *wikigrammar.WikiLinkNode) ast.AstValue {
	target := ""
	if w.Target != nil {
		target = *w.Target
	}
	text := target
	if w.Text != nil {
		text = *w.Text
	}

	if w.Site != nil {
		return ast.Text(text)
	}

	// A hash-led target ("#Language ...") that fails to resolve still keeps
	// its edge, with the language left nil for the section's head language
	// to fill in later. A hash-suffixed target ("target#Language") that
	// fails to resolve is the one case that drops the edge outright, since
	// its language was meant to stand on its own rather than fall back.
	var languagePtr *string
	switch {
	case w.HashLead != nil:
		if code, ok := langnames.Code(w.HashLead.Name); ok {
			languagePtr = &code
		}
		if w.Text != nil {
			target = *w.Text
		}
	case w.HashSuffix != nil:
		code, ok := langnames.Code(w.HashSuffix.Lang)
		if !ok {
			return ast.Text(text)
		}
		languagePtr = &code
	default:
		language := ctx.DefaultLanguage
		if language != "" {
			languagePtr = &language
		}
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return ast.Text(text)
	}
	return ast.Linked(ast.LinkedText{
		Text:  text,
		Links: []ast.EdgeInfo{ast.NewEdgeInfo(languagePtr, target, nil, nil)},
	})
}

// EvalExternalLink keeps only the link's display title, discarding the URL
// (original `external_link`).
func EvalExternalLink(e *wikigrammar.ExternalLinkNode) ast.AstValue {
	rest := strings.TrimSpace(e.Rest)
	idx := strings.IndexByte(rest, ' ')
	if idx < 0 {
		return ast.Text("")
	}
	return ast.Text(strings.TrimSpace(rest[idx+1:]))
}
