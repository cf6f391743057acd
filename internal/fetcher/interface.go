package fetcher

import (
	"context"

	"vidozet/internal/domain"
)

// Fetcher downloads the audio track of a video URL into the temp
// directory and hands back the ownership token for the file.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.AudioArtifact, error)
}
