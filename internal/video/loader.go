package video

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/pkg/executor"
)

// Info describes a loaded source video.
type Info struct {
	Path     string
	Duration float64 // seconds
	Width    int
	Height   int
	FPS      float64
	HasAudio bool
}

// Loader opens a source video and reports its properties.
type Loader interface {
	Load(ctx context.Context, path string) (Info, error)
}

type implLoader struct {
	executor executor.Executor
}

// NewLoader creates a Loader backed by ffprobe.
func NewLoader(exec executor.Executor) Loader {
	return &implLoader{executor: exec}
}

type probeResult struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	Index      int    `json:"index"`
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	Duration   string `json:"duration"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
}

type probeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
}

// Load probes path with ffprobe and normalizes the result. When the
// container does not report a duration, the video stream's own duration is
// probed as a fallback so later stages can always rely on Info.Duration.
func (l *implLoader) Load(ctx context.Context, path string) (Info, error) {
	if _, err := os.Stat(path); err != nil {
		return Info{}, &VideoLoadError{Path: path, Err: fmt.Errorf("video file not found: %w", err)}
	}

	output, err := l.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-hide_banner",
		"-show_format",
		"-show_streams",
		"-of", "json",
		"--", path,
	)
	if err != nil {
		return Info{}, &VideoLoadError{Path: path, Err: fmt.Errorf("ffprobe: %w", err)}
	}

	var result probeResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		return Info{}, &VideoLoadError{Path: path, Err: fmt.Errorf("parse ffprobe output: %w", err)}
	}

	var videoStream *probeStream
	hasAudio := false
	for i := range result.Streams {
		switch strings.ToLower(result.Streams[i].CodecType) {
		case "video":
			if videoStream == nil {
				videoStream = &result.Streams[i]
			}
		case "audio":
			hasAudio = true
		}
	}
	if videoStream == nil {
		return Info{}, &VideoLoadError{Path: path, Err: errors.New("no video stream found")}
	}

	duration := parseFloat(result.Format.Duration)
	if duration <= 0 {
		// Container did not expose a duration; fall back to the stream's.
		duration = parseFloat(videoStream.Duration)
	}
	if duration <= 0 {
		return Info{}, &VideoLoadError{Path: path, Err: errors.New("duration unavailable from container and stream")}
	}

	return Info{
		Path:     path,
		Duration: duration,
		Width:    videoStream.Width,
		Height:   videoStream.Height,
		FPS:      parseFrameRate(videoStream.RFrameRate),
		HasAudio: hasAudio,
	}, nil
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// parseFrameRate parses ffprobe's rational frame rate, e.g. "30000/1001".
func parseFrameRate(value string) float64 {
	parts := strings.SplitN(strings.TrimSpace(value), "/", 2)
	if len(parts) == 1 {
		return parseFloat(parts[0])
	}
	num := parseFloat(parts[0])
	den := parseFloat(parts[1])
	if den == 0 {
		return 0
	}
	return num / den
}
