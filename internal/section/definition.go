package section

import (
	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/handlers"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// Definition parses an English "Definitions" section body (original
// `definition_section`). Only top-level definition lines (a single "#"
// with no further list characters) contribute links; "##"/"#*"/"#:" detail
// lines are definition commentary and carry none, matching the original
// grammar's decision to parse `defn_details` but never label its result.
func Definition(ctx handlers.Context, body string) ([]ast.EdgeInfo, error) {
	parsed, err := wikigrammar.ParseLines(body)
	if err != nil {
		return nil, err
	}

	var edges []ast.EdgeInfo
	for _, line := range parsed.Lines {
		if !isTopLevelDefinitionLine(line.Marker.Chars) {
			continue
		}
		gloss := handlers.EvalInlines(ctx, line.Items)
		edges = append(edges, gloss.Links...)
	}
	return edges, nil
}

func isTopLevelDefinitionLine(chars []string) bool {
	return len(chars) == 1 && chars[0] == "#"
}
