package summarizer

import (
	"fmt"
	"os"
)

// SaveText writes the summary to the fixed output file as UTF-8 plain
// text, overwriting any previous run's output.
func SaveText(summary, path string) error {
	if summary == "" {
		return fmt.Errorf("kaydedilecek özet içeriği boş")
	}
	if err := os.WriteFile(path, []byte(summary), 0644); err != nil {
		return fmt.Errorf("dosyaya yazma hatası: %w", err)
	}
	return nil
}
