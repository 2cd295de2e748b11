// Package configwatch notifies subscribers when a config file changes on
// disk. Editors typically replace rather than rewrite files, so the watch is
// placed on the parent directory and filtered by name.
package configwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
}

// Watch starts watching path and calls onChange after each settled burst of
// write events. Stop the watcher with Close.
func Watch(path string, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("configwatch: onChange callback required")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("configwatch: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("configwatch: watch %s: %w", dir, err)
	}
	w := &Watcher{
		watcher:  fsw,
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop(onChange)
	return w, nil
}

// Close stops the watcher. No onChange callback runs after Close returns.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(onChange func()) {
	defer w.wg.Done()
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			pending = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watch error", "err", err)
		case <-timer.C:
			// Close may race an expired timer; never fire after done.
			select {
			case <-w.done:
				return
			default:
			}
			if pending {
				pending = false
				onChange()
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
