package summarizer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video_ozeti.txt")

	if err := SaveText("ilk özet", path); err != nil {
		t.Fatalf("SaveText() error = %v", err)
	}

	// Each successful run overwrites the previous summary
	if err := SaveText("ikinci özet", path); err != nil {
		t.Fatalf("SaveText() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ikinci özet" {
		t.Errorf("content = %q, want %q", data, "ikinci özet")
	}
}

func TestSaveTextEmptySummary(t *testing.T) {
	if err := SaveText("", filepath.Join(t.TempDir(), "out.txt")); err == nil {
		t.Error("SaveText() should reject an empty summary")
	}
}

func TestSaveTextWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")
	if err := SaveText("özet", path); err == nil {
		t.Error("SaveText() should fail for an unwritable path")
	}
}
