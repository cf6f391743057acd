package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	apiKeyFlag string
)

var rootCmd = &cobra.Command{
	Use:   "vidozet [url]",
	Short: "YouTube videosunu indirir, yazıya döker ve Türkçe özetler",
	Long: "vidozet bir YouTube URL'sinin ses kanalını yt-dlp ile indirir, " +
		"Whisper ile yazıya döker ve Gemini API ile Türkçe bir özet üretir. " +
		"Özet ekrana yazılır ve çıktı dosyasına kaydedilir.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runOnce(cmd.Context(), args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "yapılandırma dosyası")
	rootCmd.PersistentFlags().StringVarP(&apiKeyFlag, "api-key", "k", "", "Gemini API anahtarı (yoksa GEMINI_API_KEY)")
}

// Execute runs the CLI and reports failures on stderr. Run failures the
// drain loop already showed as an error dialog only set the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Hata: %v\n", err)
		}
		os.Exit(1)
	}
}
