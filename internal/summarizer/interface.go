package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
)

// Summarizer assembles the full transcript from the word timing sequence,
// asks the language model for an educational summary, and persists the
// combined result.
type Summarizer interface {
	// Summarize writes the summary JSON to jsonPath and a styled report to
	// docxPath (skipped when docxPath is empty).
	Summarize(ctx context.Context, words []caption.Word, jsonPath, docxPath string) error
}

// TextGenerator is the language-model collaborator: prompt in, text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EducationalSummary is the two-level summary produced from a transcript.
type EducationalSummary struct {
	DetailedSummary string `json:"detailed_summary"`
	KeyPoints       string `json:"key_points"`
}
