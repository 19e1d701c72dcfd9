package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of events editors emit for one save.
const debounceWindow = 200 * time.Millisecond

// Watch reloads the config file whenever it changes and pushes each
// successful reload to onChange. It blocks until ctx is done. The watch
// is on the file's directory, not the file, so atomic rename-into-place
// saves are seen.
//
// A reload that fails to parse is logged and skipped; the previous
// configuration stays in effect.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(Config)) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("config watch unavailable", slog.Any("error", err))
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		logger.Warn("config watch unavailable",
			slog.String("dir", dir),
			slog.Any("error", err))
		return err
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	reload := func() {
		cfg, err := Load(path)
		if err != nil {
			logger.Warn("config reload failed, keeping previous configuration",
				slog.String("path", path),
				slog.Any("error", err))
			return
		}
		logger.Debug("config reloaded", slog.String("path", path))
		onChange(cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watch error", slog.Any("error", err))
		}
	}
}
