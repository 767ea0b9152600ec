// Package watcher reports changes to a single configuration file.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"evcouplings/pkg/logging"
)

// DefaultDebounce is used when a ConfigWatcher is created with a zero interval.
const DefaultDebounce = 200 * time.Millisecond

// ConfigWatcher watches one file and invokes a callback after it changes.
//
// The directory containing the file is watched rather than the file itself, so
// editors that save by writing a temporary file and renaming it over the original
// are picked up as well. Bursts of events within the debounce interval produce a
// single callback.
type ConfigWatcher struct {
	path     string
	debounce time.Duration

	mu      sync.Mutex
	pending *time.Timer
}

// New creates a watcher for path.
func New(path string, debounce time.Duration) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{path: abs, debounce: debounce}, nil
}

// Path returns the absolute path being watched.
func (w *ConfigWatcher) Path() string {
	return w.path
}

// Watch blocks until ctx is cancelled, calling onChange after each settled change
// of the file. Callbacks run on the calling goroutine, one at a time.
func (w *ConfigWatcher) Watch(ctx context.Context, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logging.Info("ConfigWatcher", "Watching %s for changes", w.path)

	fire := make(chan struct{}, 1)
	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				w.schedule(fire)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Error("ConfigWatcher", err, "Filesystem watcher error")

		case <-fire:
			logging.Debug("ConfigWatcher", "Change detected in %s", w.path)
			onChange()
		}
	}
}

// relevant reports whether an event may have changed the watched file's content.
func (w *ConfigWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// schedule restarts the debounce timer.
func (w *ConfigWatcher) schedule(fire chan<- struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
			// a notification is already queued
		}
	})
}

func (w *ConfigWatcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}
