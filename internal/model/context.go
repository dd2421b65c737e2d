package model

import "math"

// Infinity is the indent given to blank and comment-only lines. It is larger
// than any real indentation, so such lines never close or open a block.
const Infinity = math.MaxInt

// Keyword is the first word of a line when it opens a block.
type Keyword string

// Block opening keywords.
const (
	KeywordNone    Keyword = ""
	KeywordAsync   Keyword = "async"
	KeywordClass   Keyword = "class"
	KeywordDef     Keyword = "def"
	KeywordElif    Keyword = "elif"
	KeywordElse    Keyword = "else"
	KeywordExcept  Keyword = "except"
	KeywordFinally Keyword = "finally"
	KeywordFor     Keyword = "for"
	KeywordIf      Keyword = "if"
	KeywordTry     Keyword = "try"
	KeywordWhile   Keyword = "while"
	KeywordWith    Keyword = "with"
)

// Line is the classification of a single line of source text.
type Line struct {
	Indent int
	Text   string
	Opener Keyword
}

// ContextEntry is a block opener line that encloses the viewport.
type ContextEntry struct {
	LineNumber int     `yaml:"line"`
	Indent     int     `yaml:"indent"`
	Text       string  `yaml:"text"`
	Opener     Keyword `yaml:"opener,omitempty"`
}

// Sentinel is the module-level scope entry at the bottom of every chain.
var Sentinel = ContextEntry{LineNumber: 0, Indent: -1, Text: "", Opener: KeywordNone}

// IsSentinel reports whether e is the module-level scope entry.
func (e ContextEntry) IsSentinel() bool {
	return e.LineNumber == 0
}

// ContextReport is the pinned context computed for one top line of a file.
type ContextReport struct {
	Path    Path           `yaml:"path"`
	Line    int            `yaml:"line"`
	Entries []ContextEntry `yaml:"entries"`
	Context []string       `yaml:"-"`
}
