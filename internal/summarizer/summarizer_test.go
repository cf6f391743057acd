package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"

	"vidozet/internal/apperrors"
	"vidozet/internal/logger"
)

func textResponse(parts ...string) *genaiResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestSummarizeSuccess(t *testing.T) {
	var gotPrompt string
	s := NewForTests("gemini-2.0-flash", logger.New("error"),
		func(ctx context.Context, apiKey, model, prompt string) (*genaiResponse, error) {
			gotPrompt = prompt
			return textResponse("Bu video ", "kısa bir özet."), nil
		})

	result, err := s.Summarize(context.Background(), "hello world", "key", "en")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// Parts are concatenated in order
	if result.Text != "Bu video kısa bir özet." {
		t.Errorf("Text = %q", result.Text)
	}

	// The prompt embeds the transcript unmodified, names the source
	// language, and demands Turkish output
	for _, want := range []string{
		"hello world",
		"İngilizce",
		"**Türkçe**",
		"--- Kaynak Metin (İngilizce) ---",
		"--- Bitti ---",
	} {
		if !strings.Contains(gotPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, gotPrompt)
		}
	}
}

func TestSummarizePreconditions(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		apiKey  string
		wantErr string
	}{
		{"empty api key", "some text", "", "Gemini API anahtarı girilmedi."},
		{"empty text", "", "key", "Özetlenecek metin boş."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			s := NewForTests("gemini-2.0-flash", logger.New("error"),
				func(ctx context.Context, apiKey, model, prompt string) (*genaiResponse, error) {
					called = true
					return textResponse("x"), nil
				})

			_, err := s.Summarize(context.Background(), tt.text, tt.apiKey, "en")
			if err == nil {
				t.Fatal("Summarize() should fail")
			}
			if apperrors.UserMessage(err) != tt.wantErr {
				t.Errorf("message = %q, want %q", apperrors.UserMessage(err), tt.wantErr)
			}
			if called {
				t.Error("the API must not be called when preconditions fail")
			}
		})
	}
}

func TestSummarizeMissingLanguageProceeds(t *testing.T) {
	s := NewForTests("gemini-2.0-flash", logger.New("error"),
		func(ctx context.Context, apiKey, model, prompt string) (*genaiResponse, error) {
			return textResponse("özet"), nil
		})

	result, err := s.Summarize(context.Background(), "text", "key", "")
	if err != nil {
		t.Fatalf("missing language must only warn, got error %v", err)
	}
	if result.Text != "özet" {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestSummarizeEmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *genaiResponse
	}{
		{"no candidates", &genai.GenerateContentResponse{}},
		{"candidate without content", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		}},
		{"content without parts", textResponse()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewForTests("gemini-2.0-flash", logger.New("error"),
				func(ctx context.Context, apiKey, model, prompt string) (*genaiResponse, error) {
					return tt.resp, nil
				})

			_, err := s.Summarize(context.Background(), "text", "key", "en")
			if err == nil {
				t.Fatal("an empty response must be an error, never an empty summary")
			}
			if !strings.Contains(apperrors.UserMessage(err), "Geri bildirim") {
				t.Errorf("message should carry feedback metadata, got %q", apperrors.UserMessage(err))
			}
		})
	}
}

func TestSummarizeClassifiesAPIErrors(t *testing.T) {
	s := NewForTests("gemini-2.0-flash", logger.New("error"),
		func(ctx context.Context, apiKey, model, prompt string) (*genaiResponse, error) {
			return nil, errors.New("API key not valid. Please pass a valid API key.")
		})

	_, err := s.Summarize(context.Background(), "text", "key", "en")
	if err == nil {
		t.Fatal("Summarize() should fail")
	}
	if !strings.Contains(apperrors.UserMessage(err), "Girilen Gemini API anahtarı geçersiz") {
		t.Errorf("invalid key error not rewritten: %q", apperrors.UserMessage(err))
	}
}

func TestLanguageDisplay(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "İngilizce"},
		{"tr", "Türkçe"},
		{"de", "Almanca"},
		{"fr", "Fransızca"},
		{"es", "İspanyolca"},
		{"ja", "ja"}, // unknown codes pass through verbatim
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := languageDisplay(tt.code); got != tt.want {
				t.Errorf("languageDisplay(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
