// Package watcher reports changes to a single dictionary file.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/ladder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify. It watches the directory
// containing the file so that editors which replace the file by renaming a
// temporary one are still observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	target    string
	events    chan ports.WatchEvent
	closeOnce sync.Once
}

// NewWatcher creates a file watcher. The underlying fsnotify watcher is only
// created by Start. Watch errors are reported to logger.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching path until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "cannot watch dictionary"), "path", path)
	}
	if w.fsWatcher != nil {
		return zerr.With(zerr.New("watcher already started"), "path", path)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.Wrap(err, "cannot watch dictionary"), "path", path)
	}
	w.fsWatcher = fsWatcher
	w.target = abs

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources. Stopping a watcher
// that was never started closes its event stream.
func (w *Watcher) Stop() error {
	if w.fsWatcher == nil {
		w.closeOnce.Do(func() { close(w.events) })
		return nil
	}
	return w.fsWatcher.Close()
}

// Events returns an iterator of events for the watched file. It ends once
// the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.closeOnce.Do(func() { close(w.events) })

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}
			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
			}
		}
	}
}

// convertEvent maps fsnotify events on the target file to ports.WatchEvent.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	if filepath.Clean(event.Name) != w.target {
		return ports.WatchEvent{}, false
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: w.target, Operation: op}, true
}
