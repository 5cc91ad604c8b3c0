package handlers

import (
	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// BuildArgs evaluates a template's argument list into the same int/string
// keyed map the original's template_args rule produced: positional
// arguments get integer keys starting at 1, named arguments keep their
// name.
func BuildArgs(ctx Context, t *wikigrammar.TemplateNode) map[any]ast.AstValue {
	args := map[any]ast.AstValue{}
	position := 1
	for _, a := range t.Args {
		if a == nil {
			continue
		}
		if a.Named != nil {
			args[a.Named.Key] = ast.Linked(EvalInlines(ctx, a.Named.Value))
			continue
		}
		args[position] = ast.Linked(EvalInlines(ctx, a.Positional))
		position++
	}
	return args
}

// ArgText returns the rendered text of an argument, or "" if absent.
func ArgText(args map[any]ast.AstValue, key any) string {
	v, ok := args[key]
	if !ok {
		return ""
	}
	return v.AsLinkedText().Text
}

// ArgLinks returns the links carried by an argument, or nil if absent.
func ArgLinks(args map[any]ast.AstValue, key any) []ast.EdgeInfo {
	v, ok := args[key]
	if !ok {
		return nil
	}
	return v.AsLinkedText().Links
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}
