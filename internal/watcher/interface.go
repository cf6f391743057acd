package watcher

import "context"

// Watcher defines the interface for inbox monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// RequestHandler runs one pipeline for a URL dropped into the inbox.
// It blocks until the run finishes; the watcher processes requests
// strictly one at a time.
type RequestHandler func(ctx context.Context, url string) error
