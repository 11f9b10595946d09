// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     watch
// Description: Debounced file watcher that re-runs a callback whenever a
//              source file is written
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

// DefaultDebounce is used when Options.Debounce is zero
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher
type Options struct {
	Logger   *mdwlog.Logger
	Debounce time.Duration
}

// Watcher reports changes of a single file. The parent directory is watched
// so editors that replace the file through a rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *mdwlog.Logger
}

// New creates a watcher for path
func New(path string, opts Options) (*Watcher, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to resolve watched path").
			WithCode(mdwerror.CodeIO).
			WithOperation("watch.New").
			WithDetail("path", path)
	}

	return &Watcher{
		path:     abs,
		debounce: opts.Debounce,
		logger:   opts.Logger.WithName("watch"),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange once for every burst of writes to the file, after the
// burst has been quiet for the debounce interval. It blocks until ctx is
// cancelled and then returns nil.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeIO).
			WithOperation("watch.Run")
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeIO).
			WithOperation("watch.Run").
			WithDetail("path", dir)
	}

	w.logger.Debug("watching file", mdwlog.Fields{
		"path":        w.path,
		"debounce_ms": w.debounce.Milliseconds(),
	})

	// Stopped timer; armed by the first relevant event
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopping file watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.logger.Debug("file changed", mdwlog.Fields{"path": w.path})
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("watcher error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
