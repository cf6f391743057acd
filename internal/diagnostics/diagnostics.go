package diagnostics

import (
	"context"
	"fmt"

	"vidozet/internal/config"
	"vidozet/internal/logger"
	"vidozet/pkg/executor"
)

// Item is one external-tool check result.
type Item struct {
	Name    string
	OK      bool
	Message string
	Hint    string
}

// Report aggregates the opportunistic startup checks. Failures here are
// warnings only; a run is never blocked on them.
type Report struct {
	Items []Item
}

// HasWarnings reports whether any check failed.
func (r Report) HasWarnings() bool {
	for _, item := range r.Items {
		if !item.OK {
			return true
		}
	}
	return false
}

// Check looks up the external tools the pipeline shells out to. ffmpeg
// is required by yt-dlp's audio post-processing; whisper does its own
// decoding through it too.
func Check(cfg *config.Config, exec executor.Executor) Report {
	return Report{
		Items: []Item{
			checkTool(exec, "ffmpeg",
				"yt-dlp ile ses dönüştürme ve Whisper ile bazı ses formatlarının işlenmesi için FFmpeg gereklidir. "+
					"İndirme linki: https://ffmpeg.org/download.html"),
			checkTool(exec, cfg.YtDlp.BinaryPath,
				"Video sesini indirmek için yt-dlp gereklidir."),
			checkTool(exec, cfg.Whisper.BinaryPath,
				"Transkript için openai-whisper komut satırı aracı gereklidir."),
		},
	}
}

// LogWarnings writes one warning line per failed check.
func LogWarnings(ctx context.Context, log logger.Logger, report Report) {
	for _, item := range report.Items {
		if !item.OK {
			log.Warn(ctx, "%s: %s", item.Message, item.Hint)
		}
	}
}

func checkTool(exec executor.Executor, name, hint string) Item {
	path, err := exec.LookPath(name)
	if err != nil {
		return Item{
			Name:    name,
			OK:      false,
			Message: fmt.Sprintf("'%s' bulunamadı veya PATH içinde değil", name),
			Hint:    hint,
		}
	}
	return Item{
		Name:    name,
		OK:      true,
		Message: fmt.Sprintf("%s: %s", name, path),
	}
}
