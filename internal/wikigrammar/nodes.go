package wikigrammar

// TemplateNode is `{{name|arg1|key=val|...}}` (spec Glossary "Template";
// original rules `template`/`template_args`). Argument dispatch by name
// happens in internal/handlers, not here — this node only captures shape.
type TemplateNode struct {
	Name string             `parser:"LDBrace @Term"`
	Args []*TemplateArgNode `parser:"( Pipe @@ )* RDBrace"`
}

// TemplateArgNode is one `|`-separated argument: either `key=value`
// (named) or a bare positional value.
type TemplateArgNode struct {
	Named      *NamedArgNode `parser:"  @@"`
	Positional []*Inline     `parser:"| @@*"`
}

// NamedArgNode is `key=value` inside a template's argument list.
type NamedArgNode struct {
	Key   string    `parser:"@Term Equals"`
	Value []*Inline `parser:"@@*"`
}

// Inline is one item of running wikitext: a nested template, a wiki link,
// an external link, or a run of plain text (original rules `wikitext`,
// `text_with_links`, `one_line_wikitext`).
type Inline struct {
	Template     *TemplateNode     `parser:"  @@"`
	WikiLink     *WikiLinkNode     `parser:"| @@"`
	ExternalLink *ExternalLinkNode `parser:"| @@"`
	Text         *string           `parser:"| @(Term|Colon|Equals|Hash|Bullet)"`
}

// HashLead is the "[[#LanguageName|text]]" language-by-hash-reference form.
type HashLead struct {
	Name string `parser:"Hash @Term"`
}

// HashSuffix is the "[[target#LanguageName]]" embedded-language form.
type HashSuffix struct {
	Lang string `parser:"Hash @Term"`
}

// WikiLinkNode is `[[site:target|text]]`, `[[#Lang|text]]`, or
// `[[target#Lang]]` (original rule `wiki_link`).
type WikiLinkNode struct {
	Site       *string     `parser:"LDBracket ( @Term Colon )?"`
	HashLead   *HashLead   `parser:"( @@"`
	Target     *string     `parser:"| @Term )"`
	HashSuffix *HashSuffix `parser:"@@?"`
	Text       *string     `parser:"( Pipe @Term )? RDBracket"`
}

// ExternalLinkNode is `[scheme:path title]` (original rule
// `external_link`). The title, when present, is separated from the path by
// the first space in Rest; see handlers.EvalExternalLink.
type ExternalLinkNode struct {
	Scheme string `parser:"LBracket @Term Colon"`
	Rest   string `parser:"@Term RBracket"`
}
