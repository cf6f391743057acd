package summarizer

import (
	"context"

	"google.golang.org/genai"

	"vidozet/internal/logger"
)

// genaiResponse shortens the SDK response type used throughout.
type genaiResponse = genai.GenerateContentResponse

// generateFunc abstracts the single Gemini round-trip so tests can
// substitute canned responses.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (*genaiResponse, error)

type implSummarizer struct {
	logger   logger.Logger
	model    string
	generate generateFunc
}

// New creates a Summarizer backed by the named Gemini model.
func New(model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		logger:   log,
		model:    model,
		generate: geminiGenerate,
	}
}

// NewForTests creates a Summarizer with an injectable generation call.
func NewForTests(model string, log logger.Logger, generate generateFunc) Summarizer {
	return &implSummarizer{
		logger:   log,
		model:    model,
		generate: generate,
	}
}

// geminiGenerate performs the real API call. The client is created per
// call because the key arrives with the request.
func geminiGenerate(ctx context.Context, apiKey, model, prompt string) (*genai.GenerateContentResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
}
