package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "codectx.dev/pkg/codectx/internal/model"
)

// DefaultDebounce is the default debounce interval for file events (100ms).
const DefaultDebounce = 100 * time.Millisecond

// ChangeWatcher reports modifications of a single document.
type ChangeWatcher interface {
	// Watch emits path every time the file changes on disk. Bursts of events
	// are coalesced. The channel is closed once ctx is done.
	Watch(ctx context.Context, path m.Path) (<-chan m.Path, error)
}

// LocalChangeWatcher implements ChangeWatcher with fsnotify.
type LocalChangeWatcher struct {
	debounce time.Duration
}

// NewLocalChangeWatcher creates a watcher. A non-positive debounce falls back
// to DefaultDebounce.
func NewLocalChangeWatcher(debounce time.Duration) *LocalChangeWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &LocalChangeWatcher{debounce: debounce}
}

// Watch implements ChangeWatcher.
//
// The parent directory is watched rather than the file itself: most editors
// save through a rename, which drops a watch placed on the old inode.
func (w *LocalChangeWatcher) Watch(ctx context.Context, path m.Path) (<-chan m.Path, error) {
	target, err := filepath.Abs(string(path))
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	out := make(chan m.Path, 1)

	go w.run(ctx, watcher, filepath.Clean(target), path, out)

	return out, nil
}

func (w *LocalChangeWatcher) run(ctx context.Context, watcher *fsnotify.Watcher, target string, path m.Path, out chan<- m.Path) {
	defer close(out)
	defer func() { _ = watcher.Close() }()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != target || !isContentChange(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			slog.Error("file watcher error", "path", target, "error", err)

		case <-fire:
			fire = nil

			slog.Debug("document changed on disk", "path", target)

			select {
			case out <- path:
			default:
				// A notification is already pending; the consumer reloads once.
			}
		}
	}
}

func isContentChange(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Remove)
}
