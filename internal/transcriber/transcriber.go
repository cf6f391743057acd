package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidozet/internal/apperrors"
	"vidozet/internal/domain"
)

// whisperResult mirrors the fields we need from whisper's JSON output.
type whisperResult struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Transcribe runs the whisper CLI over the full audio file in one call.
// Model weights may be downloaded on first use; that latency is accepted.
// fp16 is disabled so CPU-only hosts work. The artifact is released in a
// deferred step when deleteAfter is set, including on the error paths.
func (t *implTranscriber) Transcribe(ctx context.Context, art *domain.AudioArtifact, deleteAfter bool) (_ *domain.TranscriptResult, err error) {
	if art == nil || art.FilePath == "" {
		return nil, apperrors.New(apperrors.StageTranscribe,
			"Transkript için ses dosyası bulunamadı.")
	}
	if _, statErr := os.Stat(art.FilePath); statErr != nil {
		return nil, apperrors.Wrap(apperrors.StageTranscribe, statErr,
			fmt.Sprintf("Transkript için ses dosyası bulunamadı: %s", art.FilePath))
	}

	if deleteAfter {
		defer func() {
			if relErr := art.Release(); relErr != nil {
				t.logger.Warn(ctx, "Geçici ses dosyası silinemedi: %v", relErr)
			} else {
				t.logger.Info(ctx, "Geçici ses dosyası silindi: %s", art.FilePath)
			}
		}()
	}

	t.logger.Info(ctx, "Transkript oluşturuluyor (Model: %s)... Dosya: %s",
		t.cfg.Whisper.Model, art.FilePath)

	outputDir := filepath.Dir(art.FilePath)
	args := []string{
		art.FilePath,
		"--model", t.cfg.Whisper.Model,
		"--fp16", "False",
		"--output_format", "json",
		"--output_dir", outputDir,
		"--verbose", "False",
	}

	if _, execErr := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); execErr != nil {
		return nil, apperrors.Wrap(apperrors.StageTranscribe, execErr,
			fmt.Sprintf("Transkript sırasında hata: %v", execErr))
	}

	result, err := t.readResult(art.FilePath, outputDir)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transkript oluşturuldu. Algılanan Dil: %s", result.Language)
	return result, nil
}

// readResult parses the JSON file whisper writes next to the audio and
// removes it so the temp directory stays clean for finalization.
func (t *implTranscriber) readResult(audioPath, outputDir string) (*domain.TranscriptResult, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	jsonPath := filepath.Join(outputDir, base+".json")

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StageTranscribe, err,
			fmt.Sprintf("Transkript sırasında hata: çıktı dosyası okunamadı: %v", err))
	}
	defer os.Remove(jsonPath)

	var parsed whisperResult
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, apperrors.Wrap(apperrors.StageTranscribe, err,
			fmt.Sprintf("Transkript sırasında hata: çıktı çözümlenemedi: %v", err))
	}

	return &domain.TranscriptResult{
		Text:     strings.TrimSpace(parsed.Text),
		Language: parsed.Language,
	}, nil
}
