package files

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DocumentEvent reports an external change to a watched document.
type DocumentEvent struct {
	Path string
	Op   DocumentOp
}

// DocumentOp classifies what happened to the file on disk.
type DocumentOp string

const (
	DocumentWritten DocumentOp = "written"
	DocumentRemoved DocumentOp = "removed"
)

// writeQuiet suppresses the duplicate write events most editors produce
// when they save (truncate+write, or write to temp and rename over).
const writeQuiet = 200 * time.Millisecond

// Watcher reports external modifications to the set of open documents.
// It watches parent directories rather than the files themselves, since
// save-via-rename replaces the inode fsnotify would otherwise track.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan DocumentEvent
	logger zerolog.Logger

	mu        sync.Mutex
	paths     map[string]bool // watched document paths
	dirs      map[string]int  // watched directories, refcounted
	lastWrite map[string]time.Time
}

// NewWatcher creates a watcher with no documents registered.
func NewWatcher(logger zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		fsw:       fsw,
		events:    make(chan DocumentEvent, 16),
		logger:    logger.With().Str("component", "watcher").Logger(),
		paths:     make(map[string]bool),
		dirs:      make(map[string]int),
		lastWrite: make(map[string]time.Time),
	}, nil
}

// Events is the channel external document changes arrive on.
func (w *Watcher) Events() <-chan DocumentEvent {
	return w.events
}

// Add registers a document path for change notifications.
func (w *Watcher) Add(path string) error {
	clean := filepath.Clean(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.paths[clean] {
		return nil
	}

	dir := filepath.Dir(clean)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.paths[clean] = true
	w.logger.Debug().Str("path", clean).Msg("watching document")
	return nil
}

// Remove unregisters a document path.
func (w *Watcher) Remove(path string) {
	clean := filepath.Clean(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.paths[clean] {
		return
	}
	delete(w.paths, clean)
	delete(w.lastWrite, clean)

	dir := filepath.Dir(clean)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if err := w.fsw.Remove(dir); err != nil {
			w.logger.Warn().Str("dir", dir).Err(err).Msg("failed to unwatch directory")
		}
	}
}

// Run translates raw fsnotify events into DocumentEvents until ctx is
// cancelled. It only forwards events for registered document paths.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("watcher stopped")
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			docEvent, ok := w.translate(ev)
			if !ok {
				continue
			}
			select {
			case w.events <- docEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) translate(ev fsnotify.Event) (DocumentEvent, bool) {
	clean := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.paths[clean] {
		return DocumentEvent{}, false
	}

	switch {
	case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
		now := time.Now()
		if last, ok := w.lastWrite[clean]; ok && now.Sub(last) < writeQuiet {
			return DocumentEvent{}, false
		}
		w.lastWrite[clean] = now
		return DocumentEvent{Path: clean, Op: DocumentWritten}, true

	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return DocumentEvent{Path: clean, Op: DocumentRemoved}, true
	}

	return DocumentEvent{}, false
}
