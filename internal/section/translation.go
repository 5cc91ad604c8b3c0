// Package section implements one function per Wiktionary section kind
// (translations, links, etymology, definitions, and their German-edition
// variants), each turning a section's raw wikitext body into the EdgeInfo
// values it contributes. internal/walker composes these against the
// heading dispatch table; this package knows nothing about headings or
// entry structure.
package section

import (
	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/handlers"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// Translation parses an English "Translations" section body (original
// `translation_section`): a sequence of blocks, each opened by
// {{trans-top|sense}} or {{checktrans-top}}, continued through an optional
// {{trans-mid}}, and closed by {{trans-bottom}}. Translation templates
// found inside a block are tagged with that block's sense.
func Translation(ctx handlers.Context, body string) ([]ast.EdgeInfo, error) {
	parsed, err := wikigrammar.ParseLines(body)
	if err != nil {
		return nil, err
	}

	var edges []ast.EdgeInfo
	var sense *string
	inBlock := false

	for _, line := range parsed.Lines {
		if blockTemplate, ok := soleTemplate(line); ok {
			switch blockTemplate.Name {
			case "trans-top":
				v := handlers.EvalTemplate(ctx, blockTemplate)
				sense = v.SenseMark
				inBlock = true
				continue
			case "checktrans-top":
				sense = nil
				inBlock = true
				continue
			case "trans-mid":
				continue
			case "trans-bottom":
				inBlock = false
				sense = nil
				continue
			}
		}

		if !inBlock {
			continue
		}
		for _, item := range line.Items {
			if item.Template == nil {
				continue
			}
			v := handlers.EvalTemplate(ctx, item.Template)
			if v.Kind != ast.KindEdge {
				continue
			}
			edges = append(edges, v.Edge.SetSense(sense))
		}
	}

	return edges, nil
}

// soleTemplate reports whether a line is nothing but a single template
// invocation (the shape of a {{trans-top}}/{{trans-mid}}/{{trans-bottom}}
// marker line).
func soleTemplate(line *wikigrammar.MarkedLine) (*wikigrammar.TemplateNode, bool) {
	if len(line.Items) != 1 || line.Items[0].Template == nil {
		return nil, false
	}
	return line.Items[0].Template, true
}
