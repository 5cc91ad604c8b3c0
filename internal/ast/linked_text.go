package ast

// LinkedText is a partial parse result: the rendered text of a wiki-markup
// fragment, plus the EdgeInfo stubs collected while rendering it.
type LinkedText struct {
	Text  string
	Links []EdgeInfo
}

// NewLinkedText builds a LinkedText, normalizing the way the original
// constructor does: if text itself came from another LinkedText, splice its
// links in ahead of the supplied ones.
func NewLinkedText(text string, links []EdgeInfo) LinkedText {
	return LinkedText{Text: text, Links: links}
}

// FromLinkedText builds a LinkedText whose text is taken from an existing
// LinkedText, prefixing its links ahead of the supplied ones. This is the Go
// analogue of the Python constructor's `isinstance(text, LinkedText)` branch.
func FromLinkedText(inner LinkedText, links []EdgeInfo) LinkedText {
	allLinks := make([]EdgeInfo, 0, len(inner.Links)+len(links))
	allLinks = append(allLinks, inner.Links...)
	allLinks = append(allLinks, links...)
	return LinkedText{Text: inner.Text, Links: allLinks}
}

// Concat joins two LinkedText values: texts with a single space, links in
// order.
func (l LinkedText) Concat(other LinkedText) LinkedText {
	links := make([]EdgeInfo, 0, len(l.Links)+len(other.Links))
	links = append(links, l.Links...)
	links = append(links, other.Links...)
	return LinkedText{Text: l.Text + " " + other.Text, Links: links}
}
