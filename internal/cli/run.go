package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"vidozet/internal/domain"
	"vidozet/internal/pipeline"
)

// errReported marks a run failure that was already shown to the user as
// an error dialog, so Execute exits non-zero without printing it again.
var errReported = errors.New("hata zaten bildirildi")

// runOnce executes a single pipeline run for the given URL and drains
// the event bus onto the terminal until the run finishes.
func runOnce(ctx context.Context, url string) error {
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}

	req := domain.SourceRequest{URL: url, APIKey: a.resolveAPIKey()}
	run, err := a.orchestrator.Start(ctx, req)
	if err != nil {
		return err
	}

	drainEvents(ctx, a.orchestrator.Events(), run, 0)
	return resultError(run)
}

// resultError maps a finished run's outcome to the command error. The
// failure dialog was already printed by the drain loop; the sentinel
// keeps it from appearing twice.
func resultError(run *pipeline.Run) error {
	if run.Result().Err != nil {
		return errReported
	}
	return nil
}

// drainEvents is the presentation loop: it is the only goroutine that
// writes run progress to the terminal. The pipeline worker communicates
// exclusively through the bus. It picks up after lastSeq, so a caller
// that drains several runs off one bus never replays an earlier run's
// events, and returns the last sequence it printed.
func drainEvents(ctx context.Context, bus *pipeline.EventBus, run *pipeline.Run, lastSeq int64) int64 {
	flush := func() {
		for _, event := range bus.Since(lastSeq) {
			lastSeq = event.Seq
			printEvent(event)
		}
	}

	for {
		select {
		case <-bus.Updated():
			flush()
		case <-run.Done():
			flush()
			return lastSeq
		case <-ctx.Done():
			flush()
			return lastSeq
		}
	}
}

func printEvent(event pipeline.Event) {
	switch event.Type {
	case pipeline.EventTypeStatus:
		fmt.Printf("Durum: %s\n", event.Message)
	case pipeline.EventTypeResult:
		fmt.Printf("\n--- Video Özeti ---\n%s\n-------------------\n\n", event.Message)
	case pipeline.EventTypeInfo:
		fmt.Printf("[%s] %s\n", event.Title, event.Message)
	case pipeline.EventTypeError:
		fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Title, event.Message)
	}
}
