package domain

// SourceRequest carries the user input for a single pipeline run.
// It is immutable for the duration of the run.
type SourceRequest struct {
	URL    string
	APIKey string
}

// TranscriptResult is the transcriber output: recognized text plus
// the language code whisper detected.
type TranscriptResult struct {
	Text     string
	Language string
}

// SummaryResult holds the Turkish summary produced by Gemini.
type SummaryResult struct {
	Text string
}

// RunResult is the terminal outcome of a pipeline run, delivered to the
// presentation layer after finalization.
type RunResult struct {
	Summary  string
	Language string
	Err      error
}
