package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRelevant(t *testing.T) {
	w := &Watcher{Extension: ".php"}

	assert.True(t, w.relevant(fsnotify.Event{Name: "UsersController.php", Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: "UsersController.php", Op: fsnotify.Remove}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "UsersController.php", Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}))

	all := &Watcher{}
	assert.True(t, all.relevant(fsnotify.Event{Name: "notes.txt", Op: fsnotify.Create}))
}

func TestWatchDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	var runs atomic.Int32

	w := &Watcher{
		Dir:       dir,
		Extension: ".php",
		Debounce:  100 * time.Millisecond,
		Log:       zaptest.NewLogger(t),
		OnChange: func(context.Context) error {
			runs.Add(1)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "UsersController.php")
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("<?php class UsersController {}"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w := &Watcher{Dir: filepath.Join(t.TempDir(), "missing"), OnChange: func(context.Context) error { return nil }}

	err := w.Watch(context.Background())
	assert.ErrorContains(t, err, "failed to add watcher")
}
