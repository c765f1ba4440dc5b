package script

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mogud/jenga/core/logging/slog"
)

// Watch loads path once and then again whenever it is written, created or
// renamed into place, handing every load to fn. It returns when ctx ends.
//
// The parent directory is watched so that editors replacing the file
// atomically are still seen.
func Watch(ctx context.Context, path string, fn func(s *Script, err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %v: %w", filepath.Dir(target), err)
	}

	fn(Load(path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debugf("script watcher received %v: %v", event.Op, event.Name)
				fn(Load(path))
			} else if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.Warnf("script %v went away, waiting for it to come back", event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Errorf("script watcher error: %v", err)
		}
	}
}
