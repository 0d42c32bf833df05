package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchAndRerun runs once immediately, then re-runs run every time
// watchPath changes on disk, until the watcher's channels close or the
// process is killed. Watcher errors and failed runs are logged and
// watching continues.
func watchAndRerun(logger *zap.SugaredLogger, watchPath string, run func() error) error {
	if err := run(); err != nil {
		logger.Errorw("run failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("dagsched: starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(watchPath); err != nil {
		return fmt.Errorf("dagsched: watching %s: %w", watchPath, err)
	}

	logger.Infow("watching for changes", "path", watchPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Infow("change detected, re-running", "event", event.String())
			if err := run(); err != nil {
				logger.Errorw("run failed", "error", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("watcher error", "error", werr)
		}
	}
}
