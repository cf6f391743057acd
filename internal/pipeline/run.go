package pipeline

import "vidozet/internal/domain"

// Run is the handle for one in-flight pipeline execution.
type Run struct {
	ID string

	done   chan struct{}
	result domain.RunResult
}

func newRun(id string) *Run {
	return &Run{
		ID:   id,
		done: make(chan struct{}),
	}
}

// Done is closed after finalization completes, success or failure.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Result returns the terminal outcome. Valid only after Done is closed.
func (r *Run) Result() domain.RunResult {
	return r.result
}
