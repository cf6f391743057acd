package apperrors

import "fmt"

// Stage identifies which pipeline stage produced an error.
type Stage string

const (
	StageInput      Stage = "input"
	StageFetch      Stage = "fetch"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StagePersist    Stage = "persist"
)

// StageError is the uniform failure contract of every pipeline stage.
// Message is safe to show to the user; Err keeps the underlying cause
// for logs and errors.Is / errors.As.
type StageError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New builds a stage error without an underlying cause.
func New(stage Stage, message string) *StageError {
	return &StageError{Stage: stage, Message: message}
}

// Wrap builds a stage error around an underlying cause.
func Wrap(stage Stage, err error, message string) *StageError {
	return &StageError{Stage: stage, Message: message, Err: err}
}

// UserMessage extracts the user-facing message from an error, falling
// back to the raw error text for anything that is not a StageError.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if se, ok := err.(*StageError); ok {
		return se.Message
	}
	return err.Error()
}
