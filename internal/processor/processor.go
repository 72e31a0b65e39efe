package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
	"github.com/nguyentantai21042004/caption-studio/internal/typeset"
	"github.com/nguyentantai21042004/caption-studio/internal/video"
)

// Process runs the full pipeline for one video: transcribe, lay out the
// caption track, composite and encode, then summarize and archive.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()
	baseName := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	p.logger.Info(ctx, "Starting video processing: %s", videoPath)

	// Step 1: word-level transcription
	words, err := p.transcriber.Transcribe(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	// Step 2: probe the frame size; the font scales with the frame height.
	info, err := p.loader.Load(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("probe video: %w", err)
	}
	style := p.captionStyle(info.Height)

	// Step 3: caption layout
	measurer, err := typeset.New(style.FontPath, style.FontSize)
	if err != nil {
		return fmt.Errorf("load caption font: %w", err)
	}

	generator := caption.NewGenerator(
		caption.NewSegmenter(),
		caption.NewClipGenerator(style, measurer),
		style,
		caption.Constraints{
			MaxCharsPerLine:    p.cfg.Caption.MaxCharsPerLine,
			MaxDurationPerLine: p.cfg.Caption.MaxDurationPerLine,
			MaxGapBetweenWords: p.cfg.Caption.MaxGapBetweenWords,
		},
	)

	clips, backdrop, err := generator.Generate(words, info.Width, info.Height)
	if err != nil {
		return fmt.Errorf("generate captions: %w", err)
	}

	// Step 4: composite and encode
	outputPath, err := p.composeVideo(ctx, videoPath, style, clips, backdrop)
	if err != nil {
		return fmt.Errorf("compose video: %w", err)
	}

	// Step 5: summary JSON + docx report
	if err := p.writeSummary(ctx, baseName, words); err != nil {
		p.logger.Warn(ctx, "Failed to write summary for %s: %v", baseName, err)
	}

	// Step 6: archive the original so it is not picked up again
	if err := p.moveToArchived(ctx, videoPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Processing completed: %s (%s)", outputPath, time.Since(startTime))
	return nil
}

func (p *implProcessor) captionStyle(frameHeight int) caption.Style {
	c := p.cfg.Caption
	return caption.Style{
		FontPath:          c.FontPath,
		FontSize:          int(float64(frameHeight) * c.FontSizeRatio),
		TextColor:         c.TextColor,
		HighlightColor:    c.HighlightColor,
		StrokeColor:       c.StrokeColor,
		StrokeWidth:       c.StrokeWidth,
		BackgroundColor:   c.BackgroundColor,
		BackgroundOpacity: c.BackgroundOpacity,
	}
}

func (p *implProcessor) composeVideo(ctx context.Context, videoPath string, style caption.Style, clips []caption.Clip, backdrop caption.Backdrop) (string, error) {
	videosDir := filepath.Join(p.cfg.Paths.Output, "videos")
	if err := os.MkdirAll(videosDir, 0755); err != nil {
		return "", fmt.Errorf("create videos dir: %w", err)
	}
	outputPath := filepath.Join(videosDir, filepath.Base(videoPath))

	spec := video.Spec{
		FPS:           p.cfg.Video.FPS,
		Codec:         p.cfg.Video.Codec,
		AudioCodec:    p.cfg.Video.AudioCodec,
		Threads:       p.cfg.Video.Threads,
		Bitrate:       p.cfg.Video.VideoBitrate,
		Preset:        p.cfg.Video.Preset,
		TempDirectory: p.cfg.Paths.Temp,
	}

	videoProcessor := video.NewProcessor(
		p.loader,
		video.NewCompositor(style),
		video.NewWriter(p.executor),
		spec,
		p.logger,
	)

	if err := videoProcessor.Process(ctx, videoPath, outputPath, clips, backdrop, p.logProgress(ctx)); err != nil {
		return "", err
	}
	return outputPath, nil
}

// logProgress forwards progress snapshots to the log.
func (p *implProcessor) logProgress(ctx context.Context) video.ProgressFunc {
	return func(pr video.Progress) {
		if pr.TotalFrames == 0 {
			p.logger.Debug(ctx, "Stage: %s", pr.CurrentStage)
			return
		}
		percentage := float64(pr.ProcessedFrames) / float64(pr.TotalFrames) * 100
		p.logger.Debug(ctx, "Stage: %s - %.1f%% - ETA: %.1fs", pr.CurrentStage, percentage, pr.ETASeconds)
	}
}

func (p *implProcessor) writeSummary(ctx context.Context, baseName string, words []caption.Word) error {
	summariesDir := filepath.Join(p.cfg.Paths.Output, "summaries")
	if err := os.MkdirAll(summariesDir, 0755); err != nil {
		return fmt.Errorf("create summaries dir: %w", err)
	}

	jsonPath := filepath.Join(summariesDir, baseName+".json")
	docxPath := filepath.Join(summariesDir, baseName+".docx")
	return p.summarizer.Summarize(ctx, words, jsonPath, docxPath)
}

// moveToArchived moves the processed original out of the input folder.
func (p *implProcessor) moveToArchived(ctx context.Context, videoPath string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(videoPath))

	p.logger.Info(ctx, "Archiving original: %s -> %s", videoPath, destPath)

	if err := os.Rename(videoPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
