package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "temp and inbox must differ",
			config: Config{
				Paths: PathsConfig{
					Temp:  "shared",
					Inbox: "shared",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Temp != "temp_audio_yt" {
		t.Errorf("Temp = %v, want %v", cfg.Paths.Temp, "temp_audio_yt")
	}
	if cfg.Paths.SummaryFile != "video_ozeti.txt" {
		t.Errorf("SummaryFile = %v, want %v", cfg.Paths.SummaryFile, "video_ozeti.txt")
	}
	if cfg.YtDlp.PreferredCodec != "m4a" {
		t.Errorf("PreferredCodec = %v, want %v", cfg.YtDlp.PreferredCodec, "m4a")
	}
	if len(cfg.YtDlp.FormatPriority) == 0 || cfg.YtDlp.FormatPriority[0] != "bestaudio[ext=m4a]" {
		t.Errorf("FormatPriority = %v, want m4a first", cfg.YtDlp.FormatPriority)
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("Model = %v, want %v", cfg.Whisper.Model, "base")
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Gemini model = %v, want %v", cfg.Gemini.Model, "gemini-2.0-flash")
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  temp: "tmp/audio"
  summary_file: "ozet.txt"

ytdlp:
  preferred_codec: "m4a"
  audio_quality: "96K"

whisper:
  model: "small"

gemini:
  model: "gemini-2.0-flash"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Temp != "tmp/audio" {
		t.Errorf("Temp = %v, want %v", cfg.Paths.Temp, "tmp/audio")
	}
	if cfg.Whisper.Model != "small" {
		t.Errorf("Model = %v, want %v", cfg.Whisper.Model, "small")
	}
	if cfg.YtDlp.AudioQuality != "96K" {
		t.Errorf("AudioQuality = %v, want %v", cfg.YtDlp.AudioQuality, "96K")
	}

	// Defaults still fill the sections the file omits
	if cfg.Paths.Inbox != "inbox" {
		t.Errorf("Inbox = %v, want %v", cfg.Paths.Inbox, "inbox")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
