package video

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-studio/pkg/executor"
)

// Writer encodes a composition to durable storage. The write is atomic: the
// output path only ever holds a complete file.
type Writer interface {
	Write(ctx context.Context, comp Composition, inputPath, outputPath string, spec Spec, onProgress ProgressFunc) error
}

type implWriter struct {
	executor executor.Executor
}

// NewWriter creates a Writer backed by ffmpeg.
func NewWriter(exec executor.Executor) Writer {
	return &implWriter{executor: exec}
}

// Write encodes to a temporary file inside spec.TempDirectory and renames it
// over outputPath only after ffmpeg exits cleanly. On any failure the
// partial temporary file is deleted before the error is returned. Progress
// snapshots are pushed per ffmpeg progress report; the call blocks until the
// encode finishes or fails.
func (w *implWriter) Write(ctx context.Context, comp Composition, inputPath, outputPath string, spec Spec, onProgress ProgressFunc) error {
	if err := os.MkdirAll(spec.TempDirectory, 0755); err != nil {
		return &VideoWriteError{Err: fmt.Errorf("create temp directory: %w", err)}
	}

	filterFile, err := os.CreateTemp(spec.TempDirectory, "filters-*.txt")
	if err != nil {
		return &VideoWriteError{Err: fmt.Errorf("create filter script: %w", err)}
	}
	filterPath := filterFile.Name()
	defer os.Remove(filterPath)

	if _, err := filterFile.WriteString(comp.FilterGraph); err != nil {
		filterFile.Close()
		return &VideoWriteError{Err: fmt.Errorf("write filter script: %w", err)}
	}
	if err := filterFile.Close(); err != nil {
		return &VideoWriteError{Err: fmt.Errorf("close filter script: %w", err)}
	}

	tempFile, err := os.CreateTemp(spec.TempDirectory, "encode-*.mp4")
	if err != nil {
		return &VideoWriteError{Err: fmt.Errorf("create temp output: %w", err)}
	}
	tempPath := tempFile.Name()
	tempFile.Close()

	args := w.encodeArgs(comp, inputPath, filterPath, tempPath, spec)

	tracker := newProgressTracker(comp.Duration, spec.FPS, onProgress)
	if err := w.executor.ExecuteStream(ctx, tracker.handleLine, "ffmpeg", args...); err != nil {
		// Never leave a partial encode behind.
		os.Remove(tempPath)
		return &VideoWriteError{Err: fmt.Errorf("ffmpeg encode: %w", err)}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		os.Remove(tempPath)
		return &VideoWriteError{Err: fmt.Errorf("move output to final location: %w", err)}
	}

	return nil
}

func (w *implWriter) encodeArgs(comp Composition, inputPath, filterPath, tempPath string, spec Spec) []string {
	args := []string{
		"-y",
		"-i", inputPath,
		"-filter_script:v", filterPath,
		"-r", strconv.Itoa(spec.FPS),
		"-c:v", spec.Codec,
		"-preset", spec.Preset,
		"-b:v", spec.Bitrate,
		"-threads", strconv.Itoa(spec.Threads),
	}

	// Keep the source audio track; re-encode only with the configured codec.
	if comp.HasAudio {
		args = append(args, "-c:a", spec.AudioCodec)
	} else {
		args = append(args, "-an")
	}

	args = append(args,
		"-progress", "pipe:1",
		"-nostats",
		"-f", "mp4",
		tempPath,
	)
	return args
}

// progressTracker converts ffmpeg's key=value progress stream into Progress
// snapshots with a frame-based percentage and a naive ETA.
type progressTracker struct {
	totalFrames int
	onProgress  ProgressFunc
	startedAt   time.Time
}

func newProgressTracker(duration float64, fps int, onProgress ProgressFunc) *progressTracker {
	total := int(duration * float64(fps))
	if total < 1 {
		total = 1
	}
	return &progressTracker{
		totalFrames: total,
		onProgress:  onProgress,
		startedAt:   time.Now(),
	}
}

func (t *progressTracker) handleLine(line string) {
	if t.onProgress == nil {
		return
	}

	key, value, found := strings.Cut(strings.TrimSpace(line), "=")
	if !found || key != "frame" {
		return
	}

	frame, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || frame < 0 {
		return
	}
	if frame > t.totalFrames {
		frame = t.totalFrames
	}

	t.onProgress(Progress{
		TotalFrames:     t.totalFrames,
		ProcessedFrames: frame,
		CurrentStage:    StageEncoding,
		ETASeconds:      t.eta(frame),
	})
}

func (t *progressTracker) eta(frame int) float64 {
	if frame <= 0 {
		return 0
	}
	elapsed := time.Since(t.startedAt).Seconds()
	perFrame := elapsed / float64(frame)
	return perFrame * float64(t.totalFrames-frame)
}
