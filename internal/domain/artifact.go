package domain

import "os"

// AudioArtifact is the single-owner token for the downloaded audio file.
// Whoever holds it is responsible for deleting the file; Release performs
// that deletion at most once, so the transcriber's delete-after step and
// the orchestrator's finalization never race over the same file.
type AudioArtifact struct {
	FilePath string
	SourceID string

	consumed bool
}

// NewAudioArtifact wraps a freshly downloaded audio file.
func NewAudioArtifact(filePath, sourceID string) *AudioArtifact {
	return &AudioArtifact{
		FilePath: filePath,
		SourceID: sourceID,
	}
}

// Exists reports whether the underlying file is still on disk.
func (a *AudioArtifact) Exists() bool {
	if a == nil || a.FilePath == "" {
		return false
	}
	_, err := os.Stat(a.FilePath)
	return err == nil
}

// Release deletes the audio file and marks the artifact consumed.
// Calling it again, or on an artifact whose file is already gone,
// is a no-op returning nil.
func (a *AudioArtifact) Release() error {
	if a == nil || a.consumed {
		return nil
	}
	if _, err := os.Stat(a.FilePath); err != nil {
		a.consumed = true
		return nil
	}
	if err := os.Remove(a.FilePath); err != nil {
		return err
	}
	a.consumed = true
	return nil
}

// Consumed reports whether deletion responsibility has been discharged.
func (a *AudioArtifact) Consumed() bool {
	return a != nil && a.consumed
}
