package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"codectx.dev/pkg/codectx/internal/adapter"
	m "codectx.dev/pkg/codectx/internal/model"
)

var errBrokenLine = errors.New("broken line")

// recordingReader serves lines from memory and remembers which were read.
type recordingReader struct {
	lines  []string
	reads  []int
	failAt int
}

func newRecordingReader(lines ...string) *recordingReader {
	return &recordingReader{lines: lines}
}

func (r *recordingReader) Line(n int) (string, error) {
	if n == r.failAt {
		return "", fmt.Errorf("%w: %d", errBrokenLine, n)
	}

	if n < 1 || n > len(r.lines) {
		return "", fmt.Errorf("%w: %d", adapter.ErrLineOutOfRange, n)
	}

	r.reads = append(r.reads, n)

	return r.lines[n-1], nil
}

func (r *recordingReader) resetReads() {
	r.reads = nil
}

// functionDoc is the four line function used throughout the examples.
func functionDoc() []string {
	return []string{
		"def f():",
		"    if x:",
		"        y = 1",
		"    return y",
	}
}

// nestedDoc only indents after opener lines and has no else/elif, so every
// chain is strictly increasing in indent.
func nestedDoc() []string {
	return []string{
		"class A:",
		"    def f(self):",
		"        for i in x:",
		"            if i:",
		"                y = i",
		"",
		"            z = 1",
		"        # done",
		"        return z",
		"    def g(self):",
		"        while True:",
		"            with open(p) as fh:",
		"                pass",
		"        try:",
		"            go()",
		"        finally:",
		"            stop()",
		"x = 1",
		"def h():",
		"    return 2",
	}
}

func freshEntries(t *testing.T, lines []string, top int) []m.ContextEntry {
	t.Helper()

	stack := NewContextStack(NewContextScanner(newRecordingReader(lines...), nil))
	if _, err := stack.Update(top); err != nil {
		t.Fatalf("fresh update to %d failed: %v", top, err)
	}

	return stack.Entries()
}

func entryLines(entries []m.ContextEntry) []int {
	lines := make([]int, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.LineNumber)
	}

	return lines
}

func chainText(entries []m.ContextEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d:%d %s\n", entry.LineNumber, entry.Indent, strings.TrimSpace(entry.Text)))
	}

	return lines
}

// chainDiff renders a unified diff between two chains for failure messages.
func chainDiff(want, got []m.ContextEntry) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        chainText(want),
		B:        chainText(got),
		FromFile: "fresh",
		ToFile:   "incremental",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}
