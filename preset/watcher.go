// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatcherEvent reports one reload of the watched file.
type WatcherEvent struct {
	Names []string // presets loaded by this reload
	Error error
}

// Watcher reloads a preset file into a Registry whenever it changes.
// The parent directory is watched so editors that replace the file
// through a rename are picked up too.
type Watcher struct {
	path     string
	registry *Registry
	watcher  *fsnotify.Watcher
	events   chan WatcherEvent
	done     chan struct{}
	mu       sync.Mutex
	running  bool
	stopped  bool
}

func NewWatcher(path string, registry *Registry) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		registry: registry,
		watcher:  fsWatcher,
		events:   make(chan WatcherEvent, 10),
		done:     make(chan struct{}),
	}, nil
}

// Start loads the file once and begins watching it. A failed initial load
// is reported on Events rather than returned.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return errors.New("watcher stopped")
	}
	if w.running {
		return errors.New("watcher already running")
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", w.path, err)
	}
	w.running = true

	w.reload()

	go w.processEvents()

	return nil
}

// Stop ends watching; Events is closed once the watcher has shut down.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	close(w.done)
	w.watcher.Close()
	if !w.running {
		close(w.events)
	}
}

func (w *Watcher) Events() <-chan WatcherEvent {
	return w.events
}

func (w *Watcher) processEvents() {
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				w.reload()
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				w.send(WatcherEvent{Error: fmt.Errorf("%s was removed", w.path)})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(WatcherEvent{Error: err})
		}
	}
}

func (w *Watcher) reload() {
	names, err := w.registry.Load(w.path)
	if err != nil {
		w.send(WatcherEvent{Error: err})
		return
	}
	w.send(WatcherEvent{Names: names})
}

// send drops the event when the watcher is shutting down.
func (w *Watcher) send(ev WatcherEvent) {
	select {
	case w.events <- ev:
	case <-w.done:
	}
}
