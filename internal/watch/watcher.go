// Package watch detects newly created Gradle projects below watched
// directories and stamps them with a wrapper version.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is a debounced notification: either the paths created during one
// quiet period, in lexical order, or a backend error.
type Event struct {
	Paths []string
	Err   error
}

// Watcher is a recursive, debounced wrapper around fsnotify that reports
// created files. Directories created below a watched root are watched too,
// and the files they already contain are reported as created.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	events   chan Event
}

// New creates a Watcher. Bursts of create events are collapsed until no
// event arrived for the debounce duration.
func New(debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		fs:       fw,
		debounce: debounce,
		events:   make(chan Event),
	}, nil
}

// AddRecursive watches root and every directory below it.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// Events returns the channel debounced events are delivered on. It is
// closed when Run returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the fsnotify backend, which ends Run.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run pumps backend events until ctx is done or the backend closes.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				w.flush(ctx, pending)
				return
			}
			if !ev.Has(fsnotify.Create) {
				continue
			}
			w.created(ctx, ev.Name, pending)
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				w.flush(ctx, pending)
				return
			}
			w.send(ctx, Event{Err: err})

		case <-timer.C:
			w.flush(ctx, pending)
		}
	}
}

// created records path. A new directory is watched and its current files
// are recorded too, since they may have been written before the watch existed.
func (w *Watcher) created(ctx context.Context, path string, pending map[string]struct{}) {
	info, err := os.Lstat(path)
	if err != nil {
		// Already gone.
		return
	}
	if !info.IsDir() {
		pending[path] = struct{}{}
		return
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if addErr := w.fs.Add(p); addErr != nil {
				w.send(ctx, Event{Err: fmt.Errorf("watching %s: %w", p, addErr)})
			}
			return nil
		}
		pending[p] = struct{}{}
		return nil
	})
	if err != nil {
		w.send(ctx, Event{Err: err})
	}
}

// flush delivers the pending paths that still exist as one event and
// clears the set.
func (w *Watcher) flush(ctx context.Context, pending map[string]struct{}) {
	if len(pending) == 0 {
		return
	}
	paths := make([]string, 0, len(pending))
	for p := range pending {
		delete(pending, p)
		if _, err := os.Lstat(p); err != nil {
			continue
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	w.send(ctx, Event{Paths: paths})
}

func (w *Watcher) send(ctx context.Context, ev Event) bool {
	select {
	case w.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
