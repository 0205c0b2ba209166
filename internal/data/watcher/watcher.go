// Package watcher notifies when a dataset file changes on disk, backing the
// CLI's watch mode.
package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lanekit/lanechart/internal/util"
)

// Event describes a change to the watched dataset file.
type Event struct {
	Path      string
	Operation string
}

// DatasetWatcher watches a single dataset file. The parent directory is
// watched rather than the file itself, since editors commonly replace the
// file on save.
type DatasetWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	events  chan Event
}

// New starts watching the dataset at path.
func New(path string) (*DatasetWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	dw := &DatasetWatcher{
		watcher: watcher,
		target:  abs,
		events:  make(chan Event, 16),
	}
	go dw.processEvents()

	return dw, nil
}

func (dw *DatasetWatcher) processEvents() {
	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				close(dw.events)
				return
			}
			if event.Name != dw.target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			dw.events <- Event{Path: event.Name, Operation: event.Op.String()}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				close(dw.events)
				return
			}
			util.LogErrorf("dataset watch error: %v", err)
		}
	}
}

// Events returns the change notification channel. It is closed when the
// watcher shuts down.
func (dw *DatasetWatcher) Events() <-chan Event {
	return dw.events
}

// Close stops watching.
func (dw *DatasetWatcher) Close() error {
	return dw.watcher.Close()
}
