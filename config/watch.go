// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the file must go without changes
// before it is reloaded.
const settle = 100 * time.Millisecond

// Watch reloads the file at path whenever it is written,
// created or renamed into place, and calls f with each
// configuration that loads and validates successfully.
// A burst of changes causes a single reload once the
// file has been quiet for a short while.
// Failed reloads are logged and skipped.
// It blocks until ctx is done. f is called on the
// watching goroutine.
func Watch(ctx context.Context, path string, log *slog.Logger, f func(Config)) error {
	if log == nil {
		log = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer w.Close()

	// Editors often replace files rather than write to
	// them, so the directory is watched instead.
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			// Writes truncate first, so wait for the
			// contents to settle.
			timer.Reset(settle)
		case <-timer.C:
			cfg, err := Load(path)
			if err != nil {
				log.Warn("config reload failed", "path", path, "err", err)
				continue
			}
			log.Info("config reloaded", "path", path)
			f(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watch", "err", err)
		}
	}
}
