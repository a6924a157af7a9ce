package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippets.yaml")
	if err := os.WriteFile(path, []byte("snippets:\n  - trigger: a\n    template: one\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *File, 4)
	w, err := NewWatcher(path, func(f *File) { reloads <- f }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("snippets:\n  - trigger: a\n    template: two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-reloads:
		if len(f.Snippets) != 1 || f.Snippets[0].Template != "two" {
			t.Errorf("reloaded file = %+v", f)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippets.yaml")
	if err := os.WriteFile(path, []byte("snippets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *File, 4)
	w, err := NewWatcher(path, func(f *File) { reloads <- f }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("snippets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloads:
		t.Error("sibling file change must not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSkipsBrokenReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippets.yaml")
	if err := os.WriteFile(path, []byte("snippets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *File, 4)
	w, err := NewWatcher(path, func(f *File) { reloads <- f }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// A file that fails validation must not reach the reload callback.
	if err := os.WriteFile(path, []byte("snippets:\n  - template: no trigger\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloads:
		t.Error("invalid config must not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippets.yaml")
	if err := os.WriteFile(path, []byte("snippets: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, func(*File) {})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
