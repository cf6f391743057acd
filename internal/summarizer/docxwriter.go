package summarizer

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// SaveDocx renders the summary into a styled .docx document. The model
// is asked for a single paragraph but occasionally answers with bold
// markers or blank-line breaks, so light markdown cleanup is applied.
func SaveDocx(title, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	titleRun := doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000")
	titleRun.Bold(true)
	doc.AddParagraph("")

	for _, block := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(cleanMarkdownInline(trimmed)).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
