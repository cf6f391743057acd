package executor

import "context"

// Executor defines the interface for invoking external tools
// (yt-dlp, whisper, ffmpeg)
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
