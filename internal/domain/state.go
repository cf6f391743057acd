package domain

// RunState tracks each pipeline stage of a single summarization run.
type RunState string

const (
	StateIdle         RunState = "idle"
	StateFetching     RunState = "fetching"
	StateTranscribing RunState = "transcribing"
	StateSummarizing  RunState = "summarizing"
	StatePersisting   RunState = "persisting"
	StateDone         RunState = "done"
	StateFailed       RunState = "failed"
)

// IsActive reports whether the state represents a stage still executing.
func (s RunState) IsActive() bool {
	switch s {
	case StateFetching, StateTranscribing, StateSummarizing, StatePersisting:
		return true
	default:
		return false
	}
}

// IsValidTransition enforces the allowed edges of the run state machine.
// Stages advance strictly in order; Failed is reachable from every active
// state, and terminal states only reset back to a new fetch.
func IsValidTransition(from, to RunState) bool {
	switch from {
	case StateIdle:
		return to == StateFetching
	case StateFetching:
		return to == StateTranscribing || to == StateFailed
	case StateTranscribing:
		return to == StateSummarizing || to == StateFailed
	case StateSummarizing:
		return to == StatePersisting || to == StateFailed
	case StatePersisting:
		return to == StateDone || to == StateFailed
	case StateDone, StateFailed:
		return to == StateFetching || to == StateIdle
	default:
		return false
	}
}
