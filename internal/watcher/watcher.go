// Package watcher reruns a callback whenever files in a directory change.
package watcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for events to settle
const DefaultDebounce = 500 * time.Millisecond

// Watcher invokes OnChange after a burst of events on matching files
type Watcher struct {
	Dir       string
	Extension string
	Debounce  time.Duration
	OnChange  func(ctx context.Context) error
	Log       *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
	runMu sync.Mutex
}

// Watch blocks until ctx is cancelled or the underlying watcher fails
func (w *Watcher) Watch(ctx context.Context) error {
	if w.Log == nil {
		w.Log = zap.NewNop()
	}
	if w.Debounce <= 0 {
		w.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.Dir); err != nil {
		return fmt.Errorf("failed to add watcher for %s: %w", w.Dir, err)
	}
	w.Log.Info("Watching for changes.", zap.String("dir", w.Dir), zap.String("extension", w.Extension))

	defer w.stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.Log.Debug("File event.", zap.String("op", event.Op.String()), zap.String("file", event.Name))
			w.schedule(ctx)
		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.Log.Error("Watcher error.", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return w.Extension == "" || strings.HasSuffix(event.Name, w.Extension)
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.Debounce, func() {
		if ctx.Err() != nil {
			return
		}
		w.runMu.Lock()
		defer w.runMu.Unlock()

		w.Log.Debug("File changes detected, regenerating.")
		if err := w.OnChange(ctx); err != nil {
			w.Log.Error("Regeneration failed.", zap.Error(err))
		}
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}
