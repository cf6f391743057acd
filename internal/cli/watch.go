package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vidozet/internal/domain"
	"vidozet/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Gelen kutusuna bırakılan URL dosyalarını izler ve tek tek özetler",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// runWatch starts inbox mode: every dropped .url/.txt file triggers one
// pipeline run, strictly serialized by the orchestrator's single-run gate.
func runWatch(ctx context.Context) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var lastSeq int64
	handler := func(ctx context.Context, url string) error {
		req := domain.SourceRequest{URL: url, APIKey: a.resolveAPIKey()}
		run, err := a.orchestrator.Start(ctx, req)
		if err != nil {
			return err
		}
		// Requests are serialized, so the shared cursor is safe; it keeps
		// later runs from replaying earlier runs' buffered events.
		lastSeq = drainEvents(ctx, a.orchestrator.Events(), run, lastSeq)
		return run.Result().Err
	}

	w, err := watcher.New(a.cfg.Paths.Inbox, handler, a.log)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
