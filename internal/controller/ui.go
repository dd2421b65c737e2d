// Package controller provides the user interfaces that present code context.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"codectx.dev/pkg/codectx/internal/adapter"
	m "codectx.dev/pkg/codectx/internal/model"
)

// Format selects how context reports are printed.
type Format string

// Available Format values.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unknown format %q (want %s or %s)", value, FormatText, FormatYAML)
}

// ViewSession is a scrollable document together with its pinned context.
type ViewSession interface {
	Path() m.Path
	Lines() []string
	TopVisible() int
	// Sync moves the context to the given top visible line.
	Sync(top int) (bool, error)
	// Context returns the pinned lines, outermost first.
	Context() []string
	Entries() []m.ContextEntry
	// Reload re-reads the document after it changed on disk.
	Reload(ctx context.Context) (bool, error)
}

// DisplayOptions configures DisplayContext.
type DisplayOptions struct {
	Format Format
}

// ViewOptions configures View.
type ViewOptions struct {
	Highlighter adapter.Highlighter
	// Changes delivers a value whenever the document changed on disk; nil
	// disables reloading.
	Changes    <-chan m.Path
	Background string
	Foreground string
}

// UI presents code context to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayContext(ctx context.Context, reports []m.ContextReport, options DisplayOptions) error
	View(ctx context.Context, session ViewSession, options ViewOptions) error
}

// NewUI returns the interactive TUI on a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
