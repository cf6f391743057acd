package summarizer

import (
	"context"

	"vidozet/internal/domain"
)

// Summarizer turns a transcript into a Turkish summary via Gemini.
// The API key is supplied per call; it is user input, not configuration.
type Summarizer interface {
	Summarize(ctx context.Context, text, apiKey, sourceLanguage string) (*domain.SummaryResult, error)
}
