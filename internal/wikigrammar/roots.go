package wikigrammar

import (
	"github.com/alecthomas/participle/v2"
)

// LineMarker is the run of leading list-markers ("*", "#", ":") that opens
// most lines inside translation_section, link_section, etymology_section
// and definition_section — but not all of them: a bare {{trans-top}} or
// {{trans-mid}} template line carries none, so the run must be allowed to
// be empty. How many markers a line carries (and of which kind) is
// section-specific semantics, decided in internal/section, not here.
type LineMarker struct {
	Chars []string `parser:"@(Hash|Bullet|Colon)*"`
}

// MarkedLine is one marker-led line of running wikitext, shared by every
// English section grammar (original rules `translation_line`, `link_line`,
// `etyl_line`, `definition_line` all reduce to this same shape once
// template/link recognition is pushed down to internal/handlers).
type MarkedLine struct {
	Marker *LineMarker `parser:"@@"`
	Items  []*Inline   `parser:"@@*"`
	EOL    *string     `parser:"@Newline?"`
}

// LinesG is a full section body: zero or more MarkedLines back to back.
type LinesG struct {
	Lines []*MarkedLine `parser:"@@*"`
}

var linesParser = participle.MustBuild[LinesG](
	participle.Lexer(wikiLexer),
)

// ParseLines parses the body of an English translation/link/etymology/
// definition section into its marker-led lines.
func ParseLines(body string) (*LinesG, error) {
	return linesParser.ParseString("", body)
}

// SenseBracket is the "[1,2]" sense-number annotation that precedes a
// from_german entry, holding the raw text `sense_num` (internal/handlers)
// later expands into one or more sense strings.
type SenseBracket struct {
	Num string `parser:"LBracket @Term RBracket"`
}

// FromGermanTermG is one "{{Üxx|text|target|original}}" translation
// template, optionally preceded by a bracketed sense restriction (original
// `tr_base`). Argument 1 is the gloss text (discarded), argument 2 the
// target spelling, argument 3 an alternate/original spelling that, when
// present, wins over argument 2 (see internal/section's fromGermanTarget). The
// original rule requires a space between the sense bracket and the template
// that follows it ("right_bracket SP left_braces"); Gap absorbs that space,
// which the shared lexer otherwise tokenizes as a standalone Term.
type FromGermanTermG struct {
	Sense    *SenseBracket `parser:"@@?"`
	Gap      *string       `parser:"@Term?"`
	Template *TemplateNode `parser:"@@"`
}

// FromGermanItem is one entry of a from_german line: either a translation
// template or separator punctuation (", " / "; ") riding along as plain text.
type FromGermanItem struct {
	Term *FromGermanTermG `parser:"  @@"`
	Sep  *string          `parser:"| @Term"`
}

// FromGermanLine is "* {{xx}}: {{Üxx|...}}, {{Üxx|...}}" — a translation of
// the German head word *into* another language, disambiguated from
// ToGermanLine by its required leading Bullet and braced language code
// (original `from_german`).
type FromGermanLine struct {
	Bullet string            `parser:"@Bullet"`
	Lang   string            `parser:"LDBrace @Term RDBrace Colon"`
	Items  []*FromGermanItem `parser:"@@*"`
	EOL    *string           `parser:"@Newline?"`
}

// ToGermanLine is "{{Übersetzungen umleiten|sense|target|target_sense}}" —
// a redirect of a foreign headword's translation section to a German
// target entry (original `to_german`).
type ToGermanLine struct {
	Colon        *string   `parser:"@Colon?"`
	TemplateName string    `parser:"LDBrace @Term Pipe"`
	Sense        string    `parser:"@Term Pipe"`
	Target       []*Inline `parser:"@@*"`
	TargetSense  *string   `parser:"( Pipe @Term? )? RDBrace"`
	Gender       *string   `parser:"@Term?"`
	EOL          *string   `parser:"@Newline?"`
}

// TableFillerLine is a bare run of bullets used as translation-table
// spacing/continuation; it contributes no edges.
type TableFillerLine struct {
	Bullets string  `parser:"@Bullet+"`
	EOL     *string `parser:"@Newline?"`
}

// GermanTranslationLine orders the three German translation-line shapes.
// FromGermanLine is tried first: its mandatory leading Bullet is what
// distinguishes it from ToGermanLine, which has none.
type GermanTranslationLine struct {
	From   *FromGermanLine  `parser:"  @@"`
	Filler *TableFillerLine `parser:"| @@"`
	To     *ToGermanLine    `parser:"| @@"`
}

// TranslationSectionDEG is the full body of a German translation section.
type TranslationSectionDEG struct {
	Lines []*GermanTranslationLine `parser:"@@*"`
}

var germanTranslationParser = participle.MustBuild[TranslationSectionDEG](
	participle.Lexer(wikiLexer),
)

// ParseGermanTranslationSection parses a German-edition translation-section
// body (to_german / from_german rows, mirroring definition_section_de's
// sibling rule in the original grammar).
func ParseGermanTranslationSection(body string) (*TranslationSectionDEG, error) {
	return germanTranslationParser.ParseString("", body)
}

// DefLineDE is one German-edition definition line: ":" or "::" optionally
// followed by a bracketed sub-sense number, then the gloss text (original
// `definition_section_de`'s per-line shape).
type DefLineDE struct {
	Colon1 string    `parser:"@Colon"`
	Colon2 *string   `parser:"@Colon?"`
	LBrk   *string   `parser:"@LBracket?"`
	NumRaw *string   `parser:"@Term?"`
	RBrk   *string   `parser:"@RBracket?"`
	Items  []*Inline `parser:"@@*"`
	EOL    *string   `parser:"@Newline?"`
}

// DefinitionSectionDEG is the full body of a German definition section.
type DefinitionSectionDEG struct {
	Lines []*DefLineDE `parser:"@@*"`
}

var germanDefinitionParser = participle.MustBuild[DefinitionSectionDEG](
	participle.Lexer(wikiLexer),
)

// ParseGermanDefinitionSection parses a German-edition definition-section
// body into its (possibly sub-numbered) lines.
func ParseGermanDefinitionSection(body string) (*DefinitionSectionDEG, error) {
	return germanDefinitionParser.ParseString("", body)
}
