package apperrors

import (
	"fmt"
	"strings"
)

// geminiRule rewrites one known Gemini failure into an actionable message.
// All substrings must appear in the raw error text for the rule to apply.
type geminiRule struct {
	substrings []string
	message    func(model string, raw string) string
}

// geminiRules is evaluated in order; the first match wins.
var geminiRules = []geminiRule{
	{
		substrings: []string{"404", "models/"},
		message: func(model, raw string) string {
			return fmt.Sprintf(
				"Gemini API Hatası: Belirtilen model ('%s') bulunamadı veya API anahtarınızla kullanılamıyor. "+
					"Lütfen Google Cloud Console'da 'Generative Language API'nin etkin olduğundan ve doğru modeli "+
					"kullandığınızdan emin olun.\n\nOrijinal Hata: %s", model, raw)
		},
	},
	{
		substrings: []string{"API key not valid"},
		message: func(model, raw string) string {
			return "Girilen Gemini API anahtarı geçersiz veya gerekli API (Generative Language API) etkin değil. Lütfen kontrol edin."
		},
	},
}

// ClassifyGemini maps a raw Gemini client error onto a StageError whose
// message is actionable for the user. Unrecognized errors keep the raw
// text; the original error is preserved as the cause in every case.
func ClassifyGemini(model string, err error) *StageError {
	raw := err.Error()
	for _, rule := range geminiRules {
		if matchesAll(raw, rule.substrings) {
			return Wrap(StageSummarize, err, rule.message(model, raw))
		}
	}
	return Wrap(StageSummarize, err, fmt.Sprintf("Gemini API Hatası: %s", raw))
}

func matchesAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
