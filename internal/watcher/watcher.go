// Package watcher monitors a data directory for LIN files and hands new or
// changed files to a processing callback, so a session can be analyzed as
// files arrive instead of in one batch afterwards.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ProcessFunc is called for each LIN file the watcher decides to process.
type ProcessFunc func(ctx context.Context, path string) error

// Config holds watcher settings.
type Config struct {
	// Dir is the directory to watch for .lin files.
	Dir string

	// Settle is how long a file must stay quiet after its last write event
	// before it is processed, so half-written files are not picked up.
	// Default: 500ms.
	Settle time.Duration
}

// Watcher watches a directory and dispatches settled LIN files.
type Watcher struct {
	dir     string
	settle  time.Duration
	process ProcessFunc
	log     zerolog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a watcher for the configured directory.
func New(config Config, process ProcessFunc, log zerolog.Logger) (*Watcher, error) {
	if config.Dir == "" {
		return nil, fmt.Errorf("watch directory cannot be empty")
	}
	if process == nil {
		return nil, fmt.Errorf("process callback cannot be nil")
	}
	settle := config.Settle
	if settle == 0 {
		settle = 500 * time.Millisecond
	}
	return &Watcher{
		dir:     config.Dir,
		settle:  settle,
		process: process,
		log:     log,
		pending: make(map[string]*time.Timer),
	}, nil
}

// Run watches until the context is cancelled. Files that exist before Run is
// called are not processed; use the batch path for those.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Info().Str("dir", w.dir).Msg("watching for LIN files")

	ready := make(chan string, 16)

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !isLinFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.schedule(event.Name, ready)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")

		case path := <-ready:
			if err := w.process(ctx, path); err != nil {
				w.log.Error().Err(err).Str("file", path).Msg("failed to process file")
			}
		}
	}
}

// schedule (re)arms the settle timer for a path. Every write event pushes
// the deadline back, so the file is only dispatched once it stops changing.
func (w *Watcher) schedule(path string, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.settle)
		return
	}
	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		ready <- path
	})
}

// cancelPending stops all settle timers on shutdown.
func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// isLinFile reports whether the path names a LIN file.
func isLinFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".lin")
}
