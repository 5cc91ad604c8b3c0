// Package handlers turns parsed wikigrammar nodes into ast.AstValue results,
// the same role the teacher's internal/dsl convert.go plays between a parsed
// grammar AST and graph-domain values — one function per grammar node kind,
// dispatched by template name for {{...}} nodes (original rules.py's
// per-rule semantics methods, collapsed into a name-keyed table so adding a
// template just means adding a table entry, not a new method).
package handlers

// Context carries the parse-wide settings a handler needs but that aren't
// present in the grammar node itself: the Wiktionary edition's own
// language (original `self.default_language`), used as the implied source
// language for etymology templates that don't name one explicitly.
type Context struct {
	DefaultLanguage string
}
