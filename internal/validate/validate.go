package validate

import (
	"net/url"
	"strings"

	"vidozet/internal/apperrors"
	"vidozet/internal/domain"
)

// Request checks user input before any pipeline work starts. Every
// failure here is an input error; no goroutine is spawned and no state
// transition happens when Request rejects.
func Request(req domain.SourceRequest) error {
	if strings.TrimSpace(req.URL) == "" {
		return apperrors.New(apperrors.StageInput, "Lütfen geçerli bir YouTube video URL'si girin.")
	}

	if !IsSupportedURL(req.URL) {
		return apperrors.New(apperrors.StageInput, "Geçersiz YouTube URL formatı.")
	}

	if strings.TrimSpace(req.APIKey) == "" {
		return apperrors.New(apperrors.StageInput, "Lütfen Google Gemini API anahtarınızı girin.")
	}

	return nil
}

// IsSupportedURL reports whether the URL matches a supported
// video-hosting pattern.
func IsSupportedURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	host := parsed.Hostname()
	switch {
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		return parsed.Path == "/watch" && parsed.Query().Get("v") != ""
	case host == "youtu.be":
		return len(strings.Trim(parsed.Path, "/")) > 0
	default:
		return false
	}
}
