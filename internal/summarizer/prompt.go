package summarizer

import "fmt"

// sourceLangNames maps detected ISO codes to the display names used in
// the prompt. Unknown codes pass through verbatim.
var sourceLangNames = map[string]string{
	"en": "İngilizce",
	"tr": "Türkçe",
	"de": "Almanca",
	"fr": "Fransızca",
	"es": "İspanyolca",
}

// languageDisplay resolves a language code to its prompt display name.
func languageDisplay(code string) string {
	if name, ok := sourceLangNames[code]; ok {
		return name
	}
	return code
}

// buildPrompt constructs the single instruction sent to Gemini: state
// the source language, ask for one coherent paragraph, require Turkish
// output, and embed the full transcript between explicit delimiters.
func buildPrompt(text, sourceLanguage string) string {
	display := languageDisplay(sourceLanguage)

	return fmt.Sprintf(
		"Lütfen aşağıdaki '%s' dilindeki metni alıp, "+
			"bu metnin ana fikirlerini içeren anlaşılır bir paragraf olarak **Türkçe** dilinde özetle:\n\n"+
			"--- Kaynak Metin (%s) ---\n"+
			"%s\n"+
			"--- Bitti ---\n\n"+
			"**Türkçe Özet:**",
		display, display, text,
	)
}
