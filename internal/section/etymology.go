package section

import (
	"strings"

	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/handlers"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// Etymology parses an "Etymology" section body (original
// `etymology_section`). Two shapes contribute edges: a bare link template
// ({{compound}}, {{prefix}}, {{borrowing}}, ...), and an {{etyl|language}}
// template immediately followed by a link — the link's language is
// overridden by the one {{etyl}} names, mirroring how Wiktionary attaches
// a language to a plain [[wiki link]] etymology source.
func Etymology(ctx handlers.Context, body string) ([]ast.EdgeInfo, error) {
	parsed, err := wikigrammar.ParseLines(body)
	if err != nil {
		return nil, err
	}

	var edges []ast.EdgeInfo
	for _, line := range parsed.Lines {
		items := line.Items
		for i := 0; i < len(items); i++ {
			item := items[i]
			if item.Template == nil {
				continue
			}

			if item.Template.Name == "etyl" {
				args := handlers.BuildArgs(ctx, item.Template)
				language := strings.TrimSpace(handlers.ArgText(args, 1))
				// The original grammar's etyl_template_and_link rule allows
				// whitespace between the template and its link (etyl WS
				// link); the shared lexer rides that gap along as a
				// standalone blank Text item, so skip past it here.
				j := i + 1
				for j < len(items) && isBlankText(items[j]) {
					j++
				}
				if j < len(items) {
					linked := handlers.EvalInline(ctx, items[j])
					for _, l := range linked.AsEdges() {
						if language != "" {
							l = l.SetLanguage(language)
						}
						edges = append(edges, l)
					}
					i = j
				}
				continue
			}

			if handlers.IsLinkTemplateName(item.Template.Name) {
				v := handlers.EvalTemplate(ctx, item.Template)
				edges = append(edges, v.AsEdges()...)
			}
		}
	}
	return edges, nil
}

// EtymologyDE parses a German "Herkunft" section. The original grammar
// never implements semantics for this rule (`etymology_section_de` is a
// no-op stub in rules.py); we preserve that behavior rather than inventing
// one, since nothing in the retrieval pack documents what it should
// extract.
func EtymologyDE(_ handlers.Context, _ string) ([]ast.EdgeInfo, error) {
	return nil, nil
}
