package ast

// ValueKind tags the variant held by an AstValue: plain text, a linked
// fragment, one or more edge stubs, a sense-disambiguation mark, a raw
// template argument map, or an opaque value passed through untouched. This
// plays the same role here that graph.ValueKind plays for property values
// in the teacher.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindText
	KindLinked
	KindEdge
	KindEdges
	KindSenseMark
	KindTemplateArgs
	KindRaw
)

// AstValue is the heterogeneous value a grammar rule's handler may produce.
type AstValue struct {
	Kind         ValueKind
	Text         string
	Linked       LinkedText
	Edge         EdgeInfo
	Edges        []EdgeInfo
	SenseMark    *string
	TemplateArgs map[any]AstValue
	Raw          any
}

// Text wraps a plain string.
func Text(s string) AstValue { return AstValue{Kind: KindText, Text: s} }

// Linked wraps a LinkedText.
func Linked(lt LinkedText) AstValue { return AstValue{Kind: KindLinked, Linked: lt} }

// Edge wraps a single EdgeInfo.
func Edge(e EdgeInfo) AstValue { return AstValue{Kind: KindEdge, Edge: e} }

// Edges wraps a list of EdgeInfo.
func Edges(es []EdgeInfo) AstValue { return AstValue{Kind: KindEdges, Edges: es} }

// SenseMark wraps an optional sense string (nil for "no sense known").
func SenseMark(sense *string) AstValue { return AstValue{Kind: KindSenseMark, SenseMark: sense} }

// Args wraps a template argument map.
func Args(m map[any]AstValue) AstValue { return AstValue{Kind: KindTemplateArgs, TemplateArgs: m} }

// AsLinkedText extracts the LinkedText content of a value, treating Text as
// a LinkedText with no links and anything else as empty — the handler-level
// equivalent of the Python code's duck typing on strings/LinkedText/dict.
func (v AstValue) AsLinkedText() LinkedText {
	switch v.Kind {
	case KindText:
		return LinkedText{Text: v.Text}
	case KindLinked:
		return v.Linked
	default:
		return LinkedText{}
	}
}

// AsEdges flattens a value into the EdgeInfo list it carries, if any.
func (v AstValue) AsEdges() []EdgeInfo {
	switch v.Kind {
	case KindEdge:
		return []EdgeInfo{v.Edge}
	case KindEdges:
		return v.Edges
	case KindLinked:
		return v.Linked.Links
	default:
		return nil
	}
}
