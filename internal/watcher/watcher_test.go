package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vidozet/internal/logger"
)

func TestIsRequestFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"video.url", true},
		{"video.txt", true},
		{"VIDEO.URL", true},
		{"notes.TXT", true},
		{"video.mp3", false},
		{"video.url.swp", false},
		{"noextension", false},
		{filepath.Join("inbox", "drop.url"), true},
	}

	for _, tt := range tests {
		if got := isRequestFile(tt.path); got != tt.want {
			t.Errorf("isRequestFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestConsumeRequestFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "drop.url")
	content := "\n\n  https://youtu.be/abc123  \nhttps://youtu.be/ignored\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	url, err := consumeRequestFile(path)
	if err != nil {
		t.Fatalf("consumeRequestFile() error = %v", err)
	}
	if url != "https://youtu.be/abc123" {
		t.Errorf("url = %q", url)
	}

	// The file is consumed so the same request never runs twice
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("request file should be removed after consumption")
	}
}

func TestConsumeRequestFileEmpty(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, []byte("   \n\t\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := consumeRequestFile(path); err == nil {
		t.Fatal("expected error for a file with no URL line")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty request file should still be removed")
	}
}

func TestConsumeRequestFileMissing(t *testing.T) {
	if _, err := consumeRequestFile(filepath.Join(t.TempDir(), "gone.url")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestNewCreatesInbox(t *testing.T) {
	inbox := filepath.Join(t.TempDir(), "inbox")

	handler := func(ctx context.Context, url string) error { return nil }
	w, err := New(inbox, handler, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	info, err := os.Stat(inbox)
	if err != nil {
		t.Fatalf("inbox dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("inbox path is not a directory")
	}
}
