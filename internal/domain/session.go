package domain

import (
	"context"
	"fmt"
	"log/slog"

	"codectx.dev/pkg/codectx/internal/adapter"
	m "codectx.dev/pkg/codectx/internal/model"
)

// DocumentView binds one opened document to its own ContextStack. It is the
// unit the UI scrolls; views never share state.
type DocumentView struct {
	fs         adapter.SourceFSAdapter
	classifier *LineClassifier
	maxDepth   int

	doc   *adapter.Document
	stack *ContextStack
}

// NewDocumentView creates a view of doc positioned at line 1.
func NewDocumentView(fs adapter.SourceFSAdapter, doc *adapter.Document, classifier *LineClassifier, maxDepth int) *DocumentView {
	if classifier == nil {
		classifier = NewLineClassifier()
	}

	return &DocumentView{
		fs:         fs,
		classifier: classifier,
		maxDepth:   maxDepth,
		doc:        doc,
		stack:      NewContextStack(NewContextScanner(doc, classifier)),
	}
}

// Path returns the document path.
func (v *DocumentView) Path() m.Path {
	return v.doc.Path()
}

// Lines returns the document lines.
func (v *DocumentView) Lines() []string {
	return v.doc.Lines()
}

// Document returns the current document snapshot.
func (v *DocumentView) Document() *adapter.Document {
	return v.doc
}

// TopVisible returns the line the context is computed for.
func (v *DocumentView) TopVisible() int {
	return v.stack.TopVisible()
}

// Sync moves the context to top, clamped to the document.
func (v *DocumentView) Sync(top int) (bool, error) {
	return v.stack.Update(v.clamp(top))
}

func (v *DocumentView) clamp(top int) int {
	return min(max(top, 1), max(v.doc.Len(), 1))
}

// Context returns the pinned context lines, outermost first.
func (v *DocumentView) Context() []string {
	return v.stack.Render(v.maxDepth)
}

// Entries returns the entries behind Context.
func (v *DocumentView) Entries() []m.ContextEntry {
	return v.stack.Window(v.maxDepth)
}

// Reload re-reads the document from disk. When the content changed the
// context is rebuilt from the top of the file and moved back to the previous
// top line. It reports whether the content changed.
func (v *DocumentView) Reload(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	doc, err := v.fs.Load(v.doc.Path())
	if err != nil {
		return false, fmt.Errorf("reload %s: %w", v.doc.Path(), err)
	}

	if doc.Hash() == v.doc.Hash() {
		return false, nil
	}

	top := v.stack.TopVisible()

	v.doc = doc
	v.stack = NewContextStack(NewContextScanner(doc, v.classifier))

	slog.Info("document reloaded", "path", doc.Path(), "lines", doc.Len(), "top", top)

	if _, err := v.Sync(top); err != nil {
		return true, err
	}

	return true, nil
}
