package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"vidozet/internal/logger"
)

type implWatcher struct {
	inboxDir string
	handler  RequestHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start monitors the inbox for dropped request files. Each file holds a
// single video URL; the file is consumed (removed) before its run
// starts. Requests are handled one at a time in arrival order.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Gelen kutusu izleniyor: %s (.url / .txt dosyası bırakın)", w.inboxDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Gelen kutusu izleyici durduruldu")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isRequestFile(event.Name) {
				w.logger.Debug(ctx, "Yok sayıldı: %s", event.Name)
				continue
			}

			// Small delay so the file is fully written before reading.
			time.Sleep(200 * time.Millisecond)

			url, err := consumeRequestFile(event.Name)
			if err != nil {
				w.logger.Error(ctx, "İstek dosyası okunamadı %s: %v", event.Name, err)
				continue
			}

			w.logger.Info(ctx, "Yeni istek: %s", url)
			if err := w.handler(ctx, url); err != nil {
				w.logger.Error(ctx, "İstek işlenemedi (%s): %v", url, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "İzleyici hatası: %v", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isRequestFile accepts the file extensions treated as URL drops.
func isRequestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".url", ".txt":
		return true
	default:
		return false
	}
}

// consumeRequestFile reads the first non-empty line as the URL and
// removes the file so it is never picked up twice.
func consumeRequestFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", fmt.Errorf("dosya boş: %s", path)
}
