// Package wikigrammar defines the grammar shape of the wiki-markup PEG
// parser that turns raw section text into the node tree internal/section's
// rules walk. It is built with github.com/alecthomas/participle/v2, the
// same parser-combinator library the teacher repository uses for its own
// DSL grammar (internal/dsl/grammar.go), adapted from DSL tokens to
// wiki-markup tokens.
//
// Token boundaries are fixed up front (participle tokenizes the whole input
// before parsing), unlike the character-level backtracking PEG the original
// implementation used. To keep that tractable, only the punctuation that
// structurally matters to section parsing is tokenized: template/link
// delimiters, the pipe/equals template-argument separators, and the
// heading markers (#, *, :) used by list/definition lines. Everything else
// — including commas, semicolons, slashes and dashes used inside sense
// numbers and German translation glosses — rides along inside a Term token,
// exactly as the original grammar's own `term` rule (which excludes only
// "[]{}<>|:=\n") folds them into plain text.
package wikigrammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var wikiLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LDBrace", Pattern: `\{\{`},
	{Name: "RDBrace", Pattern: `\}\}`},
	{Name: "LDBracket", Pattern: `\[\[`},
	{Name: "RDBracket", Pattern: `\]\]`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Hash", Pattern: `#`},
	{Name: "Bullet", Pattern: `\*`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Newline", Pattern: `\n`},
	{Name: "Term", Pattern: `[^{}\[\]|=#*:\n]+`},
})
