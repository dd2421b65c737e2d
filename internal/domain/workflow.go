// Package domain tracks the chain of block openers enclosing the top line of
// a scrolling view of indentation-based source code.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"codectx.dev/pkg/codectx/internal/adapter"
	"codectx.dev/pkg/codectx/internal/controller"
	m "codectx.dev/pkg/codectx/internal/model"
)

// DefaultMaxDepth is the default number of context lines shown.
const DefaultMaxDepth = 15

// ErrNoLines is returned when a context query names no lines.
var ErrNoLines = errors.New("at least one line is required")

// ViewArgs contains the arguments for viewing a document.
type ViewArgs struct {
	Path       m.Path
	Line       int
	MaxDepth   int
	Openers    []m.Keyword
	Watch      bool
	Highlight  bool
	Style      string
	Background string
	Foreground string
}

// ContextArgs contains the arguments for printing the context of lines.
type ContextArgs struct {
	Paths    []m.Path
	Lines    []int
	MaxDepth int
	Openers  []m.Keyword
	Threads  uint
	Format   controller.Format
}

// Workflow defines the codectx use cases.
type Workflow interface {
	View(ctx context.Context, args ViewArgs) error
	Context(ctx context.Context, args ContextArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ChangeWatcher
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	watcher adapter.ChangeWatcher,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ChangeWatcher:   watcher,
		ui:              ui,
	}
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	doc, err := w.Load(args.Path)
	if err != nil {
		return fmt.Errorf("load %s: %w", args.Path, err)
	}

	view := NewDocumentView(w.SourceFSAdapter, doc, NewLineClassifier(args.Openers...), args.MaxDepth)
	if _, err := view.Sync(args.Line); err != nil {
		return fmt.Errorf("sync %s:%d: %w", args.Path, args.Line, err)
	}

	options := controller.ViewOptions{
		Highlighter: adapter.NewPlainHighlighter(),
		Background:  args.Background,
		Foreground:  args.Foreground,
	}

	if args.Highlight {
		options.Highlighter = adapter.NewChromaHighlighter(args.Style)
	}

	if args.Watch {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		changes, err := w.Watch(watchCtx, args.Path)
		if err != nil {
			return fmt.Errorf("watch %s: %w", args.Path, err)
		}

		options.Changes = changes
	}

	slog.Info("viewing document", "path", args.Path, "lines", doc.Len(), "top", view.TopVisible())

	return w.ui.View(ctx, view, options)
}

func (w *workflow) Context(ctx context.Context, args ContextArgs) error {
	if len(args.Lines) == 0 {
		return ErrNoLines
	}

	reports, err := w.contextReports(ctx, args)
	if err != nil {
		return err
	}

	return w.ui.DisplayContext(ctx, reports, controller.DisplayOptions{Format: args.Format})
}

// contextReports computes one report per path and line. Every path gets its
// own stack and the lines are applied to it in order, so each step after the
// first only rescans the lines between two consecutive tops.
func (w *workflow) contextReports(ctx context.Context, args ContextArgs) ([]m.ContextReport, error) {
	results := make([][]m.ContextReport, len(args.Paths))
	classifier := NewLineClassifier(args.Openers...)
	maxDepth := args.MaxDepth

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(int(args.Threads))
	}

	for i, path := range args.Paths {
		group.Go(func() error {
			reports, err := w.fileReports(groupCtx, path, args.Lines, classifier, maxDepth)
			if err != nil {
				return err
			}

			results[i] = reports

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

func (w *workflow) fileReports(ctx context.Context, path m.Path, lines []int, classifier *LineClassifier, maxDepth int) ([]m.ContextReport, error) {
	doc, err := w.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	stack := NewContextStack(NewContextScanner(doc, classifier))
	reports := make([]m.ContextReport, 0, len(lines))

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if line < 1 || line > doc.Len() {
			return nil, fmt.Errorf("%s:%d: %w", path, line, adapter.ErrLineOutOfRange)
		}

		if _, err := stack.Update(line); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}

		reports = append(reports, m.ContextReport{
			Path:    path,
			Line:    line,
			Entries: stack.Window(maxDepth),
			Context: stack.Render(maxDepth),
		})
	}

	slog.Debug("computed context", "path", path, "lines", len(lines))

	return reports, nil
}
