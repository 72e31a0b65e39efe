package video

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
)

// Processor runs one load -> validate -> compose -> write sequence per video.
// Stages execute strictly in order; a failure at any stage aborts the run and
// the run's temporary workspace is released on every path. Runs are never
// retried internally.
type Processor interface {
	Process(ctx context.Context, inputPath, outputPath string, clips []caption.Clip, backdrop caption.Backdrop, onProgress ProgressFunc) error
}

// runState tracks where a processing run is in its lifecycle. failed absorbs
// every non-terminal state.
type runState int

const (
	stateIdle runState = iota
	stateLoaded
	stateValidated
	stateComposed
	stateWritten
	stateClosed
	stateFailed
)

func (s runState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateLoaded:
		return "loaded"
	case stateValidated:
		return "validated"
	case stateComposed:
		return "composed"
	case stateWritten:
		return "written"
	case stateClosed:
		return "closed"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

type implProcessor struct {
	loader     Loader
	compositor Compositor
	writer     Writer
	spec       Spec
	logger     logger.Logger
}

// NewProcessor wires a Loader, Compositor and Writer into a Processor using
// the given encode spec.
func NewProcessor(loader Loader, compositor Compositor, writer Writer, spec Spec, log logger.Logger) Processor {
	return &implProcessor{
		loader:     loader,
		compositor: compositor,
		writer:     writer,
		spec:       spec,
		logger:     log,
	}
}

func (p *implProcessor) Process(ctx context.Context, inputPath, outputPath string, clips []caption.Clip, backdrop caption.Backdrop, onProgress ProgressFunc) (err error) {
	state := stateIdle
	advance := func(next runState) {
		p.logger.Debug(ctx, "Run state: %s -> %s", state, next)
		state = next
	}
	defer func() {
		// Close runs on the success path and on every failure path.
		if err != nil {
			p.logger.Debug(ctx, "Run failed after state %q", state)
			advance(stateFailed)
		} else {
			advance(stateClosed)
		}
	}()

	if err := os.MkdirAll(p.spec.TempDirectory, 0755); err != nil {
		return &VideoWriteError{Err: fmt.Errorf("create temp directory: %w", err)}
	}

	// Each run owns an isolated workspace under the configured temp dir so
	// concurrent runs never share temporary files.
	runDir, err := os.MkdirTemp(p.spec.TempDirectory, "run-*")
	if err != nil {
		return &VideoWriteError{Err: fmt.Errorf("create run directory: %w", err)}
	}
	defer os.RemoveAll(runDir)

	runSpec := p.spec
	runSpec.TempDirectory = runDir

	report(onProgress, Progress{CurrentStage: StageLoading})
	p.logger.Info(ctx, "Loading video: %s", inputPath)
	info, err := p.loader.Load(ctx, inputPath)
	if err != nil {
		return err
	}
	advance(stateLoaded)
	p.logger.Info(ctx, "Video loaded: %.2fs, %dx%d, audio=%v", info.Duration, info.Width, info.Height, info.HasAudio)

	validated, err := p.validateClips(ctx, clips, info.Duration)
	if err != nil {
		return err
	}
	advance(stateValidated)

	report(onProgress, Progress{CurrentStage: StageCompositing})
	p.logger.Info(ctx, "Compositing %d caption clips", len(validated))
	comp, err := p.compositor.Compose(info, validated, backdrop)
	if err != nil {
		return err
	}
	advance(stateComposed)

	p.logger.Info(ctx, "Writing video to %s", outputPath)
	if err := p.writer.Write(ctx, comp, inputPath, outputPath, runSpec, onProgress); err != nil {
		return err
	}
	advance(stateWritten)

	return nil
}

// validateClips enforces the timing contract before composition. A clip
// without a usable interval is a programming error and fails the run; a clip
// ending past the video merely gets clamped to the video's duration.
func (p *implProcessor) validateClips(ctx context.Context, clips []caption.Clip, duration float64) ([]caption.Clip, error) {
	validated := make([]caption.Clip, len(clips))
	for i, clip := range clips {
		if math.IsNaN(clip.Start) || math.IsNaN(clip.End) {
			return nil, &CompositionError{Err: fmt.Errorf("clip %q has no timing", clip.Text)}
		}
		if clip.Start < 0 || clip.End < clip.Start {
			return nil, &CompositionError{Err: fmt.Errorf("clip %q has invalid interval [%v, %v]", clip.Text, clip.Start, clip.End)}
		}

		if clip.End > duration {
			p.logger.Warn(ctx, "Caption end time %.3f exceeds video duration %.3f, clamping: %q", clip.End, duration, clip.Text)
			clip.End = duration
		}
		validated[i] = clip
	}
	return validated, nil
}

func report(onProgress ProgressFunc, progress Progress) {
	if onProgress != nil {
		onProgress(progress)
	}
}
