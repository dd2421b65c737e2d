package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	m "codectx.dev/pkg/codectx/internal/model"
)

// ErrLineOutOfRange is returned when a line outside the document is requested.
var ErrLineOutOfRange = errors.New("line out of range")

// LineReader gives the context tracker read access to a line-oriented text
// buffer. Line numbers are 1-indexed and the returned text excludes the line
// terminator. Implementations must keep line numbers stable between two
// consecutive context updates.
type LineReader interface {
	Line(n int) (string, error)
}

// Document is an immutable, in-memory snapshot of a source file.
type Document struct {
	path  m.Path
	hash  string
	lines []string
}

// NewDocument splits content into lines. A trailing newline does not start an
// extra line and CRLF terminators are accepted.
func NewDocument(path m.Path, content []byte) *Document {
	sum := sha256.Sum256(content)

	return &Document{
		path:  path,
		hash:  fmt.Sprintf("%x", sum),
		lines: splitLines(string(content)),
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Line implements LineReader.
func (d *Document) Line(n int) (string, error) {
	if n < 1 || n > len(d.lines) {
		return "", fmt.Errorf("%w: %d (document has %d lines)", ErrLineOutOfRange, n, len(d.lines))
	}

	return d.lines[n-1], nil
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Lines returns the document lines. The slice must not be modified.
func (d *Document) Lines() []string {
	return d.lines
}

// Path returns the path the document was loaded from.
func (d *Document) Path() m.Path {
	return d.path
}

// Hash returns the SHA-256 fingerprint of the document content.
func (d *Document) Hash() string {
	return d.hash
}

// File returns the file descriptor of the document.
func (d *Document) File() m.File {
	return m.File{Path: d.path, Hash: d.hash}
}
