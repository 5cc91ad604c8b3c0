package section

import (
	"strings"

	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/handlers"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// TranslationDE parses a German-edition "Übersetzungen" section body
// (original `translation_section_de`): a mix of from_german rows (the
// German head word translated into other languages), to_german rows (a
// foreign head word's translations redirected to a German target), and
// table-filler markup contributing nothing.
func TranslationDE(defaultLanguage, body string) ([]ast.EdgeInfo, error) {
	parsed, err := wikigrammar.ParseGermanTranslationSection(body)
	if err != nil {
		return nil, err
	}

	var edges []ast.EdgeInfo
	for _, line := range parsed.Lines {
		switch {
		case line.From != nil:
			edges = append(edges, fromGermanLine(line.From)...)
		case line.To != nil:
			edges = append(edges, toGermanLine(defaultLanguage, line.To)...)
		}
	}
	return edges, nil
}

// fromGermanLine translates the German head word into line.Lang (original
// `from_german`).
func fromGermanLine(line *wikigrammar.FromGermanLine) []ast.EdgeInfo {
	lang := strings.TrimSpace(line.Lang)
	if lang == "" {
		return nil
	}

	var edges []ast.EdgeInfo
	for _, item := range line.Items {
		if item.Term == nil {
			continue
		}
		target := fromGermanTarget(item.Term.Template)
		if target == "" {
			continue
		}
		senses := []string{""}
		if item.Term.Sense != nil {
			if parsed := handlers.ParseSenseNum(item.Term.Sense.Num); len(parsed) > 0 {
				senses = parsed
			}
		}
		for _, s := range senses {
			info := ast.Simple(lang, target).SetRelation("TranslationOf")
			if s != "" {
				info = info.SetSense(ptr(s))
			}
			edges = append(edges, info)
		}
	}
	return edges
}

// fromGermanTarget picks a {{Üxx|text|target|original}} template's target
// spelling: the "original" argument wins over "target" when both are given
// (original `from_german`: "t.original if t.original is not None else
// t.target").
func fromGermanTarget(t *wikigrammar.TemplateNode) string {
	if t == nil {
		return ""
	}
	args := handlers.BuildArgs(handlers.Context{}, t)
	if original := handlers.ArgText(args, 3); original != "" {
		return original
	}
	return handlers.ArgText(args, 2)
}

// toGermanLine redirects a foreign head word's translation to a German
// target entry (original `to_german`): rel is always TranslationOf and the
// target's language is always the edition's own default (German).
func toGermanLine(defaultLanguage string, line *wikigrammar.ToGermanLine) []ast.EdgeInfo {
	target := handlers.EvalInlines(handlers.Context{}, line.Target).Text
	target = strings.TrimSpace(target)
	if target == "" {
		return nil
	}
	if line.TargetSense != nil && *line.TargetSense != "" {
		target = target + " (" + strings.TrimSpace(*line.TargetSense) + ")"
	}

	senses := handlers.ParseSenseNum(line.Sense)
	if len(senses) == 0 {
		senses = []string{""}
	}

	var edges []ast.EdgeInfo
	for _, s := range senses {
		info := ast.Simple(defaultLanguage, target).SetRelation("TranslationOf")
		if s != "" {
			info = info.SetSense(ptr(s))
		}
		edges = append(edges, info)
	}
	return edges
}

func ptr(s string) *string { return &s }
