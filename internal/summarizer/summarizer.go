package summarizer

import (
	"context"
	"fmt"
	"strings"

	"vidozet/internal/apperrors"
	"vidozet/internal/domain"
)

// Summarize sends the transcript to Gemini exactly once and returns the
// Turkish summary. Preconditions are checked in order: a missing API key
// and empty text are errors; a missing source language only logs a
// warning and the raw code (empty string) flows into the prompt.
func (s *implSummarizer) Summarize(ctx context.Context, text, apiKey, sourceLanguage string) (*domain.SummaryResult, error) {
	if apiKey == "" {
		return nil, apperrors.New(apperrors.StageSummarize, "Gemini API anahtarı girilmedi.")
	}
	if text == "" {
		return nil, apperrors.New(apperrors.StageSummarize, "Özetlenecek metin boş.")
	}
	if sourceLanguage == "" {
		s.logger.Warn(ctx, "Kaynak dil algılanamadı, prompt buna göre ayarlanacak.")
	}

	s.logger.Info(ctx, "Gemini API ile özetleme işlemi başlatılıyor... (Kaynak Dil: %s, Model: %s)",
		displayOrUnknown(sourceLanguage), s.model)

	prompt := buildPrompt(text, sourceLanguage)
	s.logger.Debug(ctx, "Gemini prompt (ilk 200 karakter): %.200s", prompt)

	resp, err := s.generate(ctx, apiKey, s.model, prompt)
	if err != nil {
		return nil, apperrors.ClassifyGemini(s.model, err)
	}

	summary := collectParts(resp)
	if summary == "" {
		return nil, apperrors.New(apperrors.StageSummarize,
			fmt.Sprintf("Gemini API'den geçerli bir özet alınamadı. Geri bildirim: %s", feedback(resp)))
	}

	s.logger.Info(ctx, "Özetleme başarıyla tamamlandı.")
	return &domain.SummaryResult{Text: summary}, nil
}

// collectParts concatenates the text of every generated content part.
func collectParts(resp *genaiResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// feedback extracts whatever block/safety metadata the response carries
// to explain an empty result.
func feedback(resp *genaiResponse) string {
	if resp == nil || resp.PromptFeedback == nil {
		return "yok"
	}
	if resp.PromptFeedback.BlockReason != "" {
		return string(resp.PromptFeedback.BlockReason)
	}
	return "yok"
}

func displayOrUnknown(code string) string {
	if code == "" {
		return "Bilinmiyor"
	}
	return languageDisplay(code)
}
