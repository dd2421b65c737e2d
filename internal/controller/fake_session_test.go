package controller

import (
	"context"
	"fmt"

	m "codectx.dev/pkg/codectx/internal/model"
)

type fakeSession struct {
	path    m.Path
	lines   []string
	top     int
	context []string
	entries []m.ContextEntry

	syncs int

	reloads       int
	reloadChanged bool
	reloadLines   []string
	reloadErr     error
}

func newFakeSession(lineCount int, contextLines ...string) *fakeSession {
	lines := make([]string, lineCount)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}

	return &fakeSession{path: "sample.py", lines: lines, top: 1, context: contextLines}
}

func (f *fakeSession) Path() m.Path { return f.path }

func (f *fakeSession) Lines() []string { return f.lines }

func (f *fakeSession) TopVisible() int { return f.top }

func (f *fakeSession) Sync(top int) (bool, error) {
	f.syncs++
	changed := top != f.top
	f.top = top

	return changed, nil
}

func (f *fakeSession) Context() []string { return f.context }

func (f *fakeSession) Entries() []m.ContextEntry { return f.entries }

func (f *fakeSession) Reload(_ context.Context) (bool, error) {
	f.reloads++
	if f.reloadErr != nil {
		return false, f.reloadErr
	}

	if f.reloadChanged {
		f.lines = f.reloadLines
	}

	return f.reloadChanged, nil
}
