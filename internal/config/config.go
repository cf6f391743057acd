package config

import "fmt"

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	YtDlp   YtDlpConfig   `yaml:"ytdlp"`
	Whisper WhisperConfig `yaml:"whisper"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

type PathsConfig struct {
	Temp        string `yaml:"temp"`
	SummaryFile string `yaml:"summary_file"`
	DocxFile    string `yaml:"docx_file"`
	Inbox       string `yaml:"inbox"`
	LogDir      string `yaml:"log_dir"`
}

type YtDlpConfig struct {
	BinaryPath     string   `yaml:"binary_path"`
	FormatPriority []string `yaml:"format_priority"`
	PreferredCodec string   `yaml:"preferred_codec"`
	AudioQuality   string   `yaml:"audio_quality"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Model      string `yaml:"model"`
}

type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Paths.Temp == "" {
		c.Paths.Temp = "temp_audio_yt"
	}
	if c.Paths.SummaryFile == "" {
		c.Paths.SummaryFile = "video_ozeti.txt"
	}
	if c.Paths.DocxFile == "" {
		c.Paths.DocxFile = "video_ozeti.docx"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "inbox"
	}
	if c.Paths.LogDir == "" {
		c.Paths.LogDir = "logs"
	}
	if c.YtDlp.BinaryPath == "" {
		c.YtDlp.BinaryPath = "yt-dlp"
	}
	if len(c.YtDlp.FormatPriority) == 0 {
		c.YtDlp.FormatPriority = []string{
			"bestaudio[ext=m4a]",
			"bestaudio[ext=webm]",
			"bestaudio",
			"best",
		}
	}
	if c.YtDlp.PreferredCodec == "" {
		c.YtDlp.PreferredCodec = "m4a"
	}
	if c.YtDlp.AudioQuality == "" {
		c.YtDlp.AudioQuality = "128K"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Paths.Temp == c.Paths.Inbox {
		return fmt.Errorf("paths.temp and paths.inbox must differ")
	}

	return nil
}
