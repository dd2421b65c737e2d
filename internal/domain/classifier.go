package domain

import (
	"unicode"
	"unicode/utf8"

	m "codectx.dev/pkg/codectx/internal/model"
)

// CommentMarker starts a comment-only line.
const CommentMarker = '#'

// DefaultOpeners is the set of keywords that open an indented block.
var DefaultOpeners = []m.Keyword{
	m.KeywordClass,
	m.KeywordDef,
	m.KeywordElif,
	m.KeywordElse,
	m.KeywordExcept,
	m.KeywordFinally,
	m.KeywordFor,
	m.KeywordIf,
	m.KeywordTry,
	m.KeywordWhile,
	m.KeywordWith,
	m.KeywordAsync,
}

// LineClassifier derives indentation and block opener of a line.
type LineClassifier struct {
	openers map[m.Keyword]struct{}
}

// NewLineClassifier creates a classifier recognising the given openers, or
// DefaultOpeners when none are given.
func NewLineClassifier(openers ...m.Keyword) *LineClassifier {
	if len(openers) == 0 {
		openers = DefaultOpeners
	}

	set := make(map[m.Keyword]struct{}, len(openers))
	for _, opener := range openers {
		set[opener] = struct{}{}
	}

	return &LineClassifier{openers: set}
}

// Classify returns the indent, text and opener keyword of line.
//
// Blank and comment-only lines get an indent of m.Infinity. Widths are
// counted in characters.
func (c *LineClassifier) Classify(line string) m.Line {
	indent := 0
	rest := line

	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			break
		}

		indent++
		rest = rest[size:]
	}

	wordEnd := 0
	for wordEnd < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[wordEnd:])
		if !isWordRune(r) {
			break
		}

		wordEnd += size
	}

	result := m.Line{Indent: indent, Text: line, Opener: m.KeywordNone}

	if rest == "" || rest[0] == CommentMarker {
		result.Indent = m.Infinity
	}

	if word := m.Keyword(rest[:wordEnd]); word != m.KeywordNone {
		if _, ok := c.openers[word]; ok {
			result.Opener = word
		}
	}

	return result
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
