package processor

import (
	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/summarizer"
	"github.com/nguyentantai21042004/caption-studio/internal/transcriber"
	"github.com/nguyentantai21042004/caption-studio/internal/video"
	"github.com/nguyentantai21042004/caption-studio/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	logger      logger.Logger
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	loader      video.Loader
}

// New creates a Processor wiring the transcriber, the caption generator and
// the video pipeline together.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger, trans transcriber.Transcriber, summ summarizer.Summarizer) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		logger:      log,
		transcriber: trans,
		summarizer:  summ,
		loader:      video.NewLoader(exec),
	}
}
