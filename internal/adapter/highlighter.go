package adapter

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	m "codectx.dev/pkg/codectx/internal/model"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Highlighter renders document lines for terminal display.
type Highlighter interface {
	// Language names the language of the document, or "" when unknown.
	Language(path m.Path, content []byte) string
	// Highlight returns one rendered string per input line.
	Highlight(path m.Path, lines []string) []string
}

// ChromaHighlighter colours lines with chroma's 256-colour terminal formatter.
type ChromaHighlighter struct {
	style string
}

// NewChromaHighlighter creates a highlighter for the given chroma style name.
func NewChromaHighlighter(style string) *ChromaHighlighter {
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}

	return &ChromaHighlighter{style: style}
}

// Language implements Highlighter.
func (h *ChromaHighlighter) Language(path m.Path, content []byte) string {
	return enry.GetLanguage(filepath.Base(string(path)), content)
}

// Highlight implements Highlighter. It never fails: lines that cannot be
// tokenised are returned unchanged.
func (h *ChromaHighlighter) Highlight(path m.Path, lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	if len(lines) == 0 {
		return out
	}

	text := strings.Join(lines, "\n") + "\n"
	lexer := chroma.Coalesce(h.lexer(path, text))

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		slog.Debug("tokenise failed, showing plain text", "path", path, "error", err)
		return out
	}

	formatter := formatters.Get("terminal256")
	style := styles.Get(h.style)

	for i, tokens := range chroma.SplitTokensIntoLines(iterator.Tokens()) {
		if i >= len(out) {
			break
		}

		for j := range tokens {
			tokens[j].Value = strings.ReplaceAll(tokens[j].Value, "\n", "")
		}

		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, chroma.Literator(tokens...)); err != nil {
			continue
		}

		out[i] = buf.String()
	}

	return out
}

// lexer resolves a lexer by detected language, then file name, then content.
func (h *ChromaHighlighter) lexer(path m.Path, text string) chroma.Lexer {
	if language := h.Language(path, []byte(text)); language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}

	if l := lexers.Match(filepath.Base(string(path))); l != nil {
		return l
	}

	if l := lexers.Analyse(text); l != nil {
		return l
	}

	return lexers.Fallback
}

// PlainHighlighter returns lines unchanged.
type PlainHighlighter struct{}

// NewPlainHighlighter creates a PlainHighlighter.
func NewPlainHighlighter() *PlainHighlighter {
	return &PlainHighlighter{}
}

// Language implements Highlighter.
func (PlainHighlighter) Language(path m.Path, content []byte) string {
	return enry.GetLanguage(filepath.Base(string(path)), content)
}

// Highlight implements Highlighter.
func (PlainHighlighter) Highlight(_ m.Path, lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	return out
}
