package ast

// JoinText folds a possibly-empty list of AstValues into one LinkedText:
// string/text elements and LinkedText elements contribute their text (in
// order), LinkedText elements also contribute their links (in order),
// bare template-arg-map elements contribute nothing. A standalone
// template/link/sense grammar would never hand join_text anything but
// string/LinkedText/dict in the first place, since each section grammar
// only routes the rules it expects into its running wikitext; collapsing
// every template family onto one name-keyed EvalTemplate means a
// translation or sense-marking template can in principle turn up inside a
// generic wikitext run it was never written for (e.g. a stray {{t|en|cat}}
// inside a definition gloss) — so an EdgeInfo/SenseMark value reaching here
// is folded away like any other non-text artifact rather than treated as a
// programmer error.
func JoinText(items []AstValue) LinkedText {
	var texts []string
	var links []EdgeInfo

	for _, item := range items {
		switch item.Kind {
		case KindText:
			texts = append(texts, item.Text)
		case KindLinked:
			texts = append(texts, item.Linked.Text)
			links = append(links, item.Linked.Links...)
		default:
			// KindNone, KindTemplateArgs, KindRaw, KindEdge, KindEdges,
			// KindSenseMark: none of these render as text.
		}
	}

	text := ""
	for _, t := range texts {
		text += t
	}
	return LinkedText{Text: text, Links: links}
}
