package watcher

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"vidozet/internal/logger"
)

// New creates a Watcher over the inbox directory, creating it on demand.
func New(inboxDir string, handler RequestHandler, log logger.Logger) (Watcher, error) {
	if err := os.MkdirAll(inboxDir, 0755); err != nil {
		return nil, fmt.Errorf("create inbox dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
	}, nil
}
