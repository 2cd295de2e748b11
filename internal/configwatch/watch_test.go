package configwatch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edwina.yml")
	if err := os.WriteFile(path, []byte("layout: {}\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := Watch(path, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := os.WriteFile(path, []byte("layout:\n  nmaster: 2\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire on write")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edwina.yml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := Watch(path, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := os.WriteFile(filepath.Join(dir, "other.yml"), []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-fired:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchNoCallbackAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edwina.yml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	var mu sync.Mutex
	closed := false
	w, err := Watch(path, func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			t.Error("callback fired after Close returned")
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Queue a change so a debounce timer is likely in flight when we close.
	if err := os.WriteFile(path, []byte("layout: {}\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	mu.Lock()
	closed = true
	mu.Unlock()
	time.Sleep(300 * time.Millisecond)
}

func TestWatchRequiresCallback(t *testing.T) {
	if _, err := Watch("/tmp/whatever.yml", nil); err == nil {
		t.Fatal("nil callback must be rejected")
	}
}
