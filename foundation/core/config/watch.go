// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Watches configuration and data files with fsnotify and
//              reports changes after a quiet period, so that a burst of
//              editor writes triggers one reload.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-16 v0.2.0: fsnotify on the parent directories, debounced
//                       callback, watching several files

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

// DefaultDebounce is the quiet period used when a Watcher gets none
const DefaultDebounce = 300 * time.Millisecond

// ChangeHandler is called with the path of a changed file
type ChangeHandler func(path string)

// Watcher reports changes of a fixed set of files
type Watcher struct {
	fw       *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	onChange ChangeHandler
	onError  func(error)

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewWatcher watches paths. Their directories are watched so that files
// replaced by rename, as most editors save, keep being reported. Empty
// paths are ignored.
func NewWatcher(paths []string, debounce time.Duration, onChange ChangeHandler) (*Watcher, error) {
	if onChange == nil {
		return nil, mdwerror.New("change handler required for watching").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.NewWatcher")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.NewWatcher")
	}

	w := &Watcher{
		fw:       fw,
		files:    make(map[string]bool),
		debounce: debounce,
		onChange: onChange,
		timers:   make(map[string]*time.Timer),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, mdwerror.Wrap(err, "invalid watch path").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("config.NewWatcher").
				WithDetail("path", p)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, mdwerror.Wrap(err, "failed to watch directory").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.NewWatcher").
				WithDetail("directory", dir)
		}
	}
	return w, nil
}

// OnError sets a handler for watcher errors; they are dropped otherwise
func (w *Watcher) OnError(fn func(error)) {
	w.onError = fn
}

// Files returns the absolute paths being watched
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Run dispatches change events until ctx is done or the watcher is closed.
// It closes the watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(event.Name)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			if w.onError != nil {
				w.onError(mdwerror.Wrap(err, "file watcher error").
					WithCode(mdwerror.CodeConfigError).
					WithOperation("config.Watcher.Run"))
			}
		}
	}
}

// schedule restarts the quiet period of path
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.onChange(path)
	})
}

// Close stops watching and cancels pending notifications
func (w *Watcher) Close() error {
	w.mu.Lock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()
	return w.fw.Close()
}
