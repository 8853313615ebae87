package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher invokes a debounced callback whenever a watched file is
// written or recreated. The parent directory is watched rather than the
// file itself so editors that replace the file on save keep working.
type FileWatcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce *Debouncer
	done     chan struct{}
}

// Watch starts watching path and calls onChange (debounced) on every write
// or create event for it. Close stops the watcher.
func Watch(path string, window time.Duration, onChange func()) (*FileWatcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher: nil callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &FileWatcher{
		path:     abs,
		fsw:      fsw,
		debounce: NewDebouncer(window),
		done:     make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *FileWatcher) loop(onChange func()) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			evAbs, err := filepath.Abs(ev.Name)
			if err != nil || evAbs != w.path {
				continue
			}
			w.debounce.Trigger(onChange)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient on most platforms; keep going.
		case <-w.done:
			return
		}
	}
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Close stops watching and drops any pending callback.
func (w *FileWatcher) Close() error {
	close(w.done)
	w.debounce.Cancel()
	return w.fsw.Close()
}
