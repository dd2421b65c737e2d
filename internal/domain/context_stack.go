package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	m "codectx.dev/pkg/codectx/internal/model"
)

// ErrInvalidTopLine is returned when the host reports a top line below 1.
var ErrInvalidTopLine = errors.New("top visible line must be at least 1")

// ContextStack keeps the chain of block openers enclosing the top of a
// viewport in sync with scrolling. Each update only rescans the lines between
// the previous and the new top line.
//
// The chain always starts with m.Sentinel. A ContextStack belongs to a single
// view and is not safe for concurrent use.
type ContextStack struct {
	scanner    *ContextScanner
	chain      []m.ContextEntry
	topVisible int
}

// NewContextStack creates a stack positioned at line 1.
func NewContextStack(scanner *ContextScanner) *ContextStack {
	cs := &ContextStack{scanner: scanner}
	cs.Reset()

	return cs
}

// Reset drops every known opener and moves the stack back to line 1. Hosts
// call it after the document was edited above the viewport.
func (cs *ContextStack) Reset() {
	cs.chain = []m.ContextEntry{m.Sentinel}
	cs.topVisible = 1
}

// TopVisible returns the top line the stack is synchronised to.
func (cs *ContextStack) TopVisible() int {
	return cs.topVisible
}

// Depth returns the number of openers in the chain.
func (cs *ContextStack) Depth() int {
	return len(cs.chain) - 1
}

// Entries returns a copy of the chain without the sentinel.
func (cs *ContextStack) Entries() []m.ContextEntry {
	return slices.Clone(cs.chain[1:])
}

// Update synchronises the chain with a new top visible line. It reports
// whether anything was recomputed; calling it with the current top line is a
// no-op. On error the stack is left unchanged.
func (cs *ContextStack) Update(newTopVisible int) (bool, error) {
	if newTopVisible < 1 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidTopLine, newTopVisible)
	}

	if newTopVisible == cs.topVisible {
		return false, nil
	}

	var err error
	if newTopVisible > cs.topVisible {
		err = cs.scrollDown(newTopVisible)
	} else {
		err = cs.scrollUp(newTopVisible)
	}

	if err != nil {
		return false, err
	}

	slog.Debug("context updated", "from", cs.topVisible, "to", newTopVisible, "depth", cs.Depth())
	cs.topVisible = newTopVisible

	return true, nil
}

func (cs *ContextStack) scrollDown(newTopVisible int) error {
	entries, lastIndent, err := cs.scanner.Scan(newTopVisible, cs.topVisible, 0)
	if err != nil {
		return err
	}

	// Openers at or beyond lastIndent were closed inside the revealed range.
	keep := len(cs.chain)
	for keep > 1 && cs.chain[keep-1].Indent >= lastIndent {
		keep--
	}

	cs.chain = append(cs.chain[:keep], entries...)

	return nil
}

func (cs *ContextStack) scrollUp(newTopVisible int) error {
	keep := len(cs.chain)
	indentFloor := cs.chain[keep-1].Indent + 1

	// Openers at or below the new top line are inside the viewport now.
	for keep > 1 && cs.chain[keep-1].LineNumber >= newTopVisible {
		indentFloor = cs.chain[keep-1].Indent
		keep--
	}

	entries, _, err := cs.scanner.Scan(newTopVisible, cs.chain[keep-1].LineNumber+1, indentFloor)
	if err != nil {
		return err
	}

	cs.chain = append(cs.chain[:keep], entries...)

	return nil
}

// Window returns the last maxDepth entries of the chain, leaving out the
// sentinel.
func (cs *ContextStack) Window(maxDepth int) []m.ContextEntry {
	if maxDepth <= 0 {
		return []m.ContextEntry{}
	}

	window := cs.chain[max(len(cs.chain)-maxDepth, 0):]
	if window[0].IsSentinel() {
		window = window[1:]
	}

	return slices.Clone(window)
}

// Render returns the text of the last maxDepth context lines, outermost
// first.
func (cs *ContextStack) Render(maxDepth int) []string {
	window := cs.Window(maxDepth)

	lines := make([]string, 0, len(window))
	for _, entry := range window {
		lines = append(lines, entry.Text)
	}

	return lines
}
