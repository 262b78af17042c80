// File: watch_test.go
// Title: Configuration File Watching Tests
// Description: Tests for debounced change notification of watched files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: fsnotify watcher with several files

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
)

func startWatcher(t *testing.T, paths []string) <-chan string {
	t.Helper()

	changes := make(chan string, 16)
	w, err := NewWatcher(paths, 150*time.Millisecond, func(path string) { changes <- path })
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return changes
}

func waitChange(t *testing.T, changes <-chan string) string {
	t.Helper()
	select {
	case path := <-changes:
		return path
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
		return ""
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "gauss.toml", tomlContent)
	icsPath := writeFile(t, dir, "holidays.ics", "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	writeFile(t, dir, "other.txt", "x")

	changes := startWatcher(t, []string{cfgPath, icsPath, ""})

	// a burst of writes is reported once
	for i := 0; i < 3; i++ {
		writeFile(t, dir, "gauss.toml", tomlContent+"\n# edit\n")
	}
	if got := waitChange(t, changes); got != cfgPath {
		t.Errorf("changed path = %s, want %s", got, cfgPath)
	}

	// files outside the set are ignored
	writeFile(t, dir, "other.txt", "y")

	writeFile(t, dir, "holidays.ics", "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n\r\n")
	if got := waitChange(t, changes); got != icsPath {
		t.Errorf("changed path = %s, want %s", got, icsPath)
	}

	select {
	case path := <-changes:
		t.Errorf("unexpected extra change of %s", path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherReportsReplacedFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "gauss.toml", tomlContent)
	changes := startWatcher(t, []string{cfgPath})

	// editors save by writing a temporary file and renaming it
	tmp := writeFile(t, dir, ".gauss.toml.swp", tomlContent+"\n# saved\n")
	if err := os.Rename(tmp, cfgPath); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	if got := waitChange(t, changes); got != cfgPath {
		t.Errorf("changed path = %s, want %s", got, cfgPath)
	}
}

func TestNewWatcherErrors(t *testing.T) {
	if _, err := NewWatcher([]string{"gauss.toml"}, 0, nil); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("NewWatcher(nil handler) error = %v, want CodeInvalidInput", err)
	}

	missing := filepath.Join(t.TempDir(), "none", "gauss.toml")
	if _, err := NewWatcher([]string{missing}, 0, func(string) {}); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("NewWatcher(missing directory) error = %v, want CodeConfigError", err)
	}
}
