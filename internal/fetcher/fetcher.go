package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidozet/internal/apperrors"
	"vidozet/internal/domain"
)

// Fetch downloads the best available audio stream for the URL via yt-dlp.
// The output is named by the hosting site's video ID so repeated runs
// against the same source are reproducible and different sources never
// collide inside the shared temp directory.
func (f *implFetcher) Fetch(ctx context.Context, url string) (*domain.AudioArtifact, error) {
	tempDir := f.cfg.Paths.Temp
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, apperrors.Wrap(apperrors.StageFetch, err,
			fmt.Sprintf("Geçici klasör oluşturulamadı: %v", err))
	}

	f.logger.Info(ctx, "yt-dlp ile ses indiriliyor: %s", url)

	output, err := f.executor.Execute(ctx, f.cfg.YtDlp.BinaryPath, f.buildArgs(url, tempDir)...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StageFetch, err,
			fmt.Sprintf("yt-dlp İndirme Hatası: %v", err))
	}

	sourceID := lastLine(output)
	if sourceID == "" {
		return nil, apperrors.New(apperrors.StageFetch,
			"İndirme sonrası dosya bulunamadı. Video ID: N/A")
	}

	audioPath, err := f.locateOutput(tempDir, sourceID)
	if err != nil {
		return nil, err
	}

	f.logger.Info(ctx, "Ses başarıyla indirildi: %s", audioPath)
	return domain.NewAudioArtifact(audioPath, sourceID), nil
}

// buildArgs assembles the yt-dlp invocation: audio-only with a fixed
// format priority, single item even for playlist URLs, ID-keyed output
// template, and a post-processing extraction to the preferred codec.
// --print id with --no-simulate makes yt-dlp emit the video ID while
// still downloading.
func (f *implFetcher) buildArgs(url, tempDir string) []string {
	return []string{
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"-f", strings.Join(f.cfg.YtDlp.FormatPriority, "/"),
		"-x",
		"--audio-format", f.cfg.YtDlp.PreferredCodec,
		"--audio-quality", f.cfg.YtDlp.AudioQuality,
		"-o", filepath.Join(tempDir, "%(id)s.%(ext)s"),
		"--print", "id",
		"--no-simulate",
		url,
	}
}

// locateOutput resolves the downloaded file. The expected path uses the
// preferred codec extension; the post-processor may have produced a
// different one, so a prefix scan of the temp directory is the fallback,
// picking the most recently modified match.
func (f *implFetcher) locateOutput(tempDir, sourceID string) (string, error) {
	expected := filepath.Join(tempDir, sourceID+"."+f.cfg.YtDlp.PreferredCodec)
	if _, err := os.Stat(expected); err == nil {
		return expected, nil
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return "", apperrors.Wrap(apperrors.StageFetch, err,
			fmt.Sprintf("İndirme sonrası dosya bulunamadı. Video ID: %s", sourceID))
	}

	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), sourceID) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = filepath.Join(tempDir, entry.Name())
			newestMod = mod
		}
	}

	if newest == "" {
		return "", apperrors.New(apperrors.StageFetch,
			fmt.Sprintf("İndirme sonrası dosya bulunamadı. Video ID: %s", sourceID))
	}
	return newest, nil
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
