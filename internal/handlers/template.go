package handlers

import (
	"strings"

	"github.com/conceptgraph/wiktsem/internal/ast"
	"github.com/conceptgraph/wiktsem/internal/wikigrammar"
)

// translationTemplateNames are the template names that introduce a single
// translation (original `translation_name`).
var translationTemplateNames = map[string]struct{}{
	"t-simple": {}, "t+": {}, "t-": {}, "t0": {}, "tø": {}, "t": {},
}

// linkTemplateNames are the template names that link to a definition of
// another word, excluding the "l/<subtype>" form handled separately
// (original `link_template_name`).
var linkTemplateNames = map[string]struct{}{
	"term/t": {}, "term": {}, "l": {}, "ja-l": {}, "ko-inline": {},
	"blend": {}, "borrowing": {}, "back-form": {}, "calque": {},
	"clipping": {}, "compound": {}, "confix": {}, "-er": {},
	"etycomp": {}, "prefix": {}, "suffix": {},
}

// IsLinkTemplateName reports whether name is one of the template names
// handled by linkTemplate, for callers (internal/section's etymology
// handling) that need to recognize a link template without evaluating it.
func IsLinkTemplateName(name string) bool {
	if strings.HasPrefix(name, "l/") {
		return true
	}
	_, ok := linkTemplateNames[name]
	return ok
}

// EvalTemplate dispatches a parsed {{...}} node by name (original per-rule
// semantics methods, collapsed into one name-keyed table).
func EvalTemplate(ctx Context, t *wikigrammar.TemplateNode) ast.AstValue {
	name := t.Name
	args := BuildArgs(ctx, t)

	switch {
	case name == "sense":
		return senseTemplate(args)
	case name == "trans-top":
		return sensetransTopTemplate(args)
	case name == "checktrans-top":
		return checktransTopTemplate()
	case isTranslationTemplateName(name):
		return translationTemplate(args)
	case IsLinkTemplateName(name):
		return linkTemplate(ctx, name, args)
	default:
		// An unhandled template: keep its argument map around (etymology
		// handling needs to see {{etyl|...}}'s arguments) but it contributes
		// no text or links on its own.
		return ast.Args(args)
	}
}

func isTranslationTemplateName(name string) bool {
	_, ok := translationTemplateNames[name]
	return ok
}

// translationTemplate handles {{t|lang|word|...}} and its variants
// (original `translation_template`): arg 1 is the bare language code, arg 2
// the translated word.
func translationTemplate(args map[any]ast.AstValue) ast.AstValue {
	language := strings.TrimSpace(ArgText(args, 1))
	target := ArgText(args, 2)
	if language == "" || target == "" {
		return ast.AstValue{}
	}
	return ast.Edge(ast.Simple(language, target).SetRelation("TranslationOf"))
}

// sensetransTopTemplate handles {{trans-top|sense}}, which groups the
// following translations under a word sense (original
// `sensetrans_top_template`).
func sensetransTopTemplate(args map[any]ast.AstValue) ast.AstValue {
	return ast.SenseMark(strPtrOrNil(ArgText(args, 1)))
}

// checktransTopTemplate handles {{checktrans-top}}, whose translations have
// no assigned sense (original `checktrans_top_template`).
func checktransTopTemplate() ast.AstValue {
	return ast.SenseMark(nil)
}

// senseTemplate handles {{sense|word}} inside link sections, tagging the
// link entries that follow it with a sense (original `sense_template`).
func senseTemplate(args map[any]ast.AstValue) ast.AstValue {
	return ast.SenseMark(strPtrOrNil(ArgText(args, 1)))
}

// linkTemplate handles the whole family of templates that link to another
// word's definition, including etymology-only forms such as {{compound}}
// and {{etycomp}} (original `link_template`). Argument text and any links
// nested inside arguments are flattened first, mirroring the original's
// own flattening pass, so that an unmatched template name still falls back
// to whatever links its arguments happened to carry.
func linkTemplate(ctx Context, rawName string, args map[any]ast.AstValue) ast.AstValue {
	linktype := rawName
	subtype := ""
	if strings.HasPrefix(rawName, "l/") {
		linktype = "l"
		subtype = strings.TrimPrefix(rawName, "l/")
	}

	text := make(map[any]string, len(args))
	var allLinks []ast.EdgeInfo
	for k, v := range args {
		lt := v.AsLinkedText()
		text[k] = lt.Text
		allLinks = append(allLinks, lt.Links...)
	}
	get := func(key any) string { return text[key] }

	var links []ast.EdgeInfo
	renderedText := ""
	matched := true

	switch {
	case linktype == "l" && subtype != "" && get(1) != "":
		language := strings.TrimSpace(subtype)
		target := get(1)
		links = []ast.EdgeInfo{ast.Simple(language, target)}
		renderedText = target

	case (linktype == "l" || linktype == "term/t") && get(2) != "":
		language := get(1)
		target := get(2)
		renderedText = get(3)
		if renderedText == "" {
			renderedText = target
		}
		links = []ast.EdgeInfo{ast.Simple(language, target)}

	case linktype == "term" && get(1) != "":
		language := get("lang")
		target := get(1)
		renderedText = get(2)
		if renderedText == "" {
			renderedText = target
		}
		links = []ast.EdgeInfo{ast.Simple(language, target)}

	case linktype == "ja-l" && get(1) != "":
		renderedText = get(1)
		links = []ast.EdgeInfo{ast.Simple("ja", renderedText)}

	case linktype == "ko-inline" && get(1) != "":
		renderedText = get(1)
		links = []ast.EdgeInfo{ast.Simple("ko", renderedText)}

	case (linktype == "back-form" || linktype == "clipping" || linktype == "-er") && get(1) != "":
		language := get("lang")
		if language == "" {
			language = ctx.DefaultLanguage
		}
		links = []ast.EdgeInfo{ast.Simple(language, get(1)).SetRelation("DerivedFrom")}

	case linktype == "borrowing" && get(2) != "":
		links = []ast.EdgeInfo{ast.Simple(get(1), get(2)).SetRelation("DerivedFrom")}

	case linktype == "blend" || linktype == "calque" || linktype == "compound" ||
		linktype == "confix" || linktype == "prefix" || linktype == "suffix":
		links = compoundFamilyLinks(ctx, linktype, args, text)

	case linktype == "etycomp" && get(2) != "":
		lang1 := get("lang1")
		if lang1 == "" {
			lang1 = ctx.DefaultLanguage
		}
		lang2 := get("lang2")
		if lang2 == "" {
			lang2 = get("lang1")
		}
		if lang2 == "" {
			lang2 = ctx.DefaultLanguage
		}
		links = []ast.EdgeInfo{
			ast.Simple(lang1, get(1)).SetRelation("EtymologicallyDerivedFrom"),
			ast.Simple(lang2, get(2)).SetRelation("EtymologicallyDerivedFrom"),
		}

	default:
		matched = false
	}

	if !matched {
		links = allLinks
	}

	return ast.Linked(ast.LinkedText{Text: renderedText, Links: links})
}

// compoundFamilyLinks handles {{blend}}, {{calque}}, {{compound}},
// {{confix}}, {{prefix}} and {{suffix}}, which all derive the head word
// from up to three component terms (original `link_template`'s
// blend/calque/compound/confix/prefix/suffix branch). A {{prefix}} or
// {{confix}}'s first component gets a trailing "-", a {{suffix}}'s (or a
// {{confix}}'s last present) component gets a leading "-", matching how
// Wiktionary renders affixes.
func compoundFamilyLinks(ctx Context, linktype string, args map[any]ast.AstValue, text map[any]string) []ast.EdgeInfo {
	language := text["lang"]
	if language == "" {
		language = ctx.DefaultLanguage
	}

	a1, a2, a3 := text[1], text[2], text[3]
	if (linktype == "prefix" || linktype == "confix") && a1 != "" {
		a1 += "-"
	}
	if linktype == "suffix" && a2 != "" {
		a2 = "-" + a2
	}
	if linktype == "confix" {
		last := 0
		for _, n := range [3]int{1, 2, 3} {
			if _, ok := args[n]; ok {
				last = n
			}
		}
		switch last {
		case 2:
			if a2 != "" {
				a2 = "-" + a2
			}
		case 3:
			if a3 != "" {
				a3 = "-" + a3
			}
		}
	}

	var links []ast.EdgeInfo
	for _, component := range []string{a1, a2, a3} {
		if component != "" {
			links = append(links, ast.Simple(language, component).SetRelation("DerivedFrom"))
		}
	}
	return links
}
