package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Caption     CaptionConfig     `yaml:"caption"`
	Video       VideoConfig       `yaml:"video"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

// CaptionConfig holds the on-screen text style and the line-breaking limits.
type CaptionConfig struct {
	FontPath          string  `yaml:"font_path"`
	FontSizeRatio     float64 `yaml:"font_size_ratio"` // fraction of frame height
	TextColor         string  `yaml:"text_color"`
	HighlightColor    string  `yaml:"highlight_color"`
	StrokeColor       string  `yaml:"stroke_color"`
	StrokeWidth       float64 `yaml:"stroke_width"`
	BackgroundColor   string  `yaml:"background_color"`
	BackgroundOpacity float64 `yaml:"background_opacity"`

	MaxCharsPerLine    int     `yaml:"max_chars_per_line"`
	MaxDurationPerLine float64 `yaml:"max_duration_per_line"`
	MaxGapBetweenWords float64 `yaml:"max_gap_between_words"`
}

// VideoConfig is the encode configuration applied to every output video.
type VideoConfig struct {
	FPS          int    `yaml:"fps"`
	Codec        string `yaml:"codec"`
	AudioCodec   string `yaml:"audio_codec"`
	Threads      int    `yaml:"threads"`
	VideoBitrate string `yaml:"video_bitrate"`
	Preset       string `yaml:"preset"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.Language == "" {
		return fmt.Errorf("whisper.language is required")
	}
	if c.Caption.FontPath == "" {
		return fmt.Errorf("caption.font_path is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}

	if c.Caption.FontSizeRatio == 0 {
		c.Caption.FontSizeRatio = 0.075
	}
	if c.Caption.TextColor == "" {
		c.Caption.TextColor = "white"
	}
	if c.Caption.HighlightColor == "" {
		c.Caption.HighlightColor = "yellow"
	}
	if c.Caption.StrokeColor == "" {
		c.Caption.StrokeColor = "black"
	}
	if c.Caption.StrokeWidth == 0 {
		c.Caption.StrokeWidth = 1.5
	}
	if c.Caption.BackgroundColor == "" {
		c.Caption.BackgroundColor = "0x404040"
	}
	if c.Caption.BackgroundOpacity == 0 {
		c.Caption.BackgroundOpacity = 0.6
	}
	if c.Caption.MaxCharsPerLine == 0 {
		c.Caption.MaxCharsPerLine = 30
	}
	if c.Caption.MaxDurationPerLine == 0 {
		c.Caption.MaxDurationPerLine = 2.5
	}
	if c.Caption.MaxGapBetweenWords == 0 {
		c.Caption.MaxGapBetweenWords = 1.5
	}

	if c.Video.FPS == 0 {
		c.Video.FPS = 24
	}
	if c.Video.Codec == "" {
		c.Video.Codec = "libx264"
	}
	if c.Video.AudioCodec == "" {
		c.Video.AudioCodec = "aac"
	}
	if c.Video.Threads == 0 {
		c.Video.Threads = 4
	}
	if c.Video.VideoBitrate == "" {
		c.Video.VideoBitrate = "8000k"
	}
	if c.Video.Preset == "" {
		c.Video.Preset = "medium"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
