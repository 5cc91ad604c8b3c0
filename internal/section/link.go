package section

import (
	"strings"

	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/handlers"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// Link parses a "Synonyms"/"Hypernyms"/"Related terms"/etc. section body
// (original `link_section`): one bulleted entry per line, each entry
// optionally opened by a {{sense|...}} template that tags every link the
// rest of the line produces.
func Link(ctx handlers.Context, body string) ([]ast.EdgeInfo, error) {
	parsed, err := wikigrammar.ParseLines(body)
	if err != nil {
		return nil, err
	}

	var edges []ast.EdgeInfo
	for _, line := range parsed.Lines {
		if len(line.Marker.Chars) == 0 {
			continue
		}
		edges = append(edges, linkEntry(ctx, line.Items)...)
	}
	return edges, nil
}

// linkEntry evaluates one bulleted line, applying a leading {{sense}}
// template (if any) to every link found afterward (original `link_entry`).
func linkEntry(ctx handlers.Context, items []*wikigrammar.Inline) []ast.EdgeInfo {
	// The shared lexer has no whitespace elision, so the bullet-to-template
	// gap in "* {{sense|...}} ..." rides along as a standalone blank Text
	// item; skip it before checking for a leading sense template, same as
	// the original grammar's bullet-SP-sense_template rule did implicitly.
	for len(items) > 0 && isBlankText(items[0]) {
		items = items[1:]
	}

	var sense *string
	if len(items) > 0 && items[0].Template != nil && items[0].Template.Name == "sense" {
		v := handlers.EvalTemplate(ctx, items[0].Template)
		sense = v.SenseMark
		items = items[1:]
	}

	var links []ast.EdgeInfo
	for _, item := range items {
		v := handlers.EvalInline(ctx, item)
		links = append(links, v.AsEdges()...)
	}

	if sense != nil {
		for i := range links {
			links[i] = links[i].SetSense(sense)
		}
	}
	return links
}

func isBlankText(item *wikigrammar.Inline) bool {
	return item.Template == nil && item.WikiLink == nil && item.ExternalLink == nil &&
		item.Text != nil && strings.TrimSpace(*item.Text) == ""
}
