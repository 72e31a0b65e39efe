package summarizer

import (
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
)

const maxChunkSize = 1024

type implSummarizer struct {
	generator TextGenerator
	logger    logger.Logger
}

// New creates a Summarizer using the given language-model collaborator.
func New(generator TextGenerator, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator: generator,
		logger:    log,
	}
}
