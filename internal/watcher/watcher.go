// Package watcher monitors a single file for changes. The CLI uses it to
// re-validate a routes manifest whenever it is saved.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one file and reports each change through a callback.
type Watcher struct {
	path     string
	onChange func()
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// New creates a Watcher for the file at path. onChange is called once per
// relevant filesystem event, from the watcher's own goroutine.
func New(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		done:     make(chan struct{}),
	}
}

// Start begins watching. The watch is placed on the file's directory, not
// the file itself: editors commonly replace files by rename, which would
// silently drop a direct file watch.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	if w.fsw != nil {
		w.fsw.Close()
	}
	<-w.done
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Nothing useful to do with watch errors in a check loop.
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return
	}
	w.onChange()
}
