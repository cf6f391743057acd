package transcriber

import (
	"context"

	"vidozet/internal/domain"
)

// Transcriber runs speech recognition over a downloaded audio artifact.
// With deleteAfter set, ownership of the audio file transfers here and
// the file is removed once recognition finishes, success or not.
type Transcriber interface {
	Transcribe(ctx context.Context, art *domain.AudioArtifact, deleteAfter bool) (*domain.TranscriptResult, error)
}
