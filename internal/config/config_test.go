package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/test.bin",
			BinaryPath: "./whisper",
			Language:   "en",
		},
		Caption: CaptionConfig{
			FontPath: "fonts/Helvetica.ttf",
		},
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing model path",
			mutate:  func(c *Config) { c.Whisper.ModelPath = "" },
			wantErr: true,
		},
		{
			name:    "missing font path",
			mutate:  func(c *Config) { c.Caption.FontPath = "" },
			wantErr: true,
		},
		{
			name:    "missing paths",
			mutate:  func(c *Config) { c.Paths = PathsConfig{} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Caption.MaxCharsPerLine != 30 {
		t.Errorf("MaxCharsPerLine = %v, want 30", cfg.Caption.MaxCharsPerLine)
	}
	if cfg.Caption.MaxDurationPerLine != 2.5 {
		t.Errorf("MaxDurationPerLine = %v, want 2.5", cfg.Caption.MaxDurationPerLine)
	}
	if cfg.Caption.MaxGapBetweenWords != 1.5 {
		t.Errorf("MaxGapBetweenWords = %v, want 1.5", cfg.Caption.MaxGapBetweenWords)
	}
	if cfg.Video.Codec != "libx264" {
		t.Errorf("Codec = %v, want libx264", cfg.Video.Codec)
	}
	if cfg.Video.FPS != 24 {
		t.Errorf("FPS = %v, want 24", cfg.Video.FPS)
	}
	if cfg.Video.Preset != "medium" {
		t.Errorf("Preset = %v, want medium", cfg.Video.Preset)
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
whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
  language: "en"
  prompt: "test"

caption:
  font_path: "fonts/Helvetica.ttf"
  text_color: "white"
  highlight_color: "yellow"
  max_chars_per_line: 42

video:
  video_bitrate: "5M"
  audio_codec: "aac"
  codec: "libx264"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
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

	if cfg.Whisper.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/test.bin")
	}
	if cfg.Caption.MaxCharsPerLine != 42 {
		t.Errorf("MaxCharsPerLine = %v, want 42", cfg.Caption.MaxCharsPerLine)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
