package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidozet/internal/diagnostics"
	"vidozet/pkg/executor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Harici araçların (ffmpeg, yt-dlp, whisper) kurulumunu denetler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report := diagnostics.Check(cfg, executor.New())
		for _, item := range report.Items {
			mark := "OK"
			if !item.OK {
				mark = "EKSİK"
			}
			fmt.Printf("[%s] %s\n", mark, item.Message)
			if item.Hint != "" && !item.OK {
				fmt.Printf("       %s\n", item.Hint)
			}
		}

		if report.HasWarnings() {
			fmt.Println("\nEksik araçlar olsa da program çalışmaya devam eder, ancak hatalarla karşılaşabilirsiniz.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
