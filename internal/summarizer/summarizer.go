package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
)

const detailedPrompt = `You are an expert at analyzing educational video content. Summarize the transcript excerpt below in detail, keeping every step and key idea in the order it appears. Keep domain terminology intact.

Transcript excerpt:
---
%s
---`

const keyPointsPrompt = `Condense the following summary into its key points, one short statement per point.

Summary:
---
%s
---`

// summaryFile is the on-disk schema consumers of the summary read.
type summaryFile struct {
	FullTranscript     string             `json:"full_transcript"`
	EducationalSummary EducationalSummary `json:"educational_summary"`
	TotalWords         int                `json:"total_words"`
	DurationSeconds    float64            `json:"duration_seconds"`
}

// Summarize joins the words into the full transcript, summarizes it chunk by
// chunk, condenses the concatenation into key points, and persists the JSON
// (plus an optional docx report).
func (s *implSummarizer) Summarize(ctx context.Context, words []caption.Word, jsonPath, docxPath string) error {
	if len(words) == 0 {
		return fmt.Errorf("summarize: no words to summarize")
	}

	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	transcript := strings.Join(parts, " ")

	summary, err := s.generateEducationalSummary(ctx, transcript)
	if err != nil {
		return fmt.Errorf("generate summary: %w", err)
	}

	file := summaryFile{
		FullTranscript:     transcript,
		EducationalSummary: summary,
		TotalWords:         len(words),
		DurationSeconds:    words[len(words)-1].End - words[0].Start,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write summary file: %w", err)
	}
	s.logger.Info(ctx, "Summary written: %s", jsonPath)

	if docxPath != "" {
		if err := writeSummaryDocx("Video Summary", transcript, summary, docxPath); err != nil {
			return fmt.Errorf("write summary report: %w", err)
		}
		s.logger.Info(ctx, "Summary report written: %s", docxPath)
	}

	return nil
}

// generateEducationalSummary summarizes each transcript chunk, then makes one
// more pass over the concatenated chunk summaries to extract key points.
func (s *implSummarizer) generateEducationalSummary(ctx context.Context, transcript string) (EducationalSummary, error) {
	chunks := chunkTranscript(transcript, maxChunkSize)
	s.logger.Debug(ctx, "Summarizing %d transcript chunks", len(chunks))

	chunkSummaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		summary, err := s.generator.Generate(ctx, fmt.Sprintf(detailedPrompt, chunk))
		if err != nil {
			return EducationalSummary{}, fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		chunkSummaries = append(chunkSummaries, strings.TrimSpace(summary))
	}

	detailed := strings.Join(chunkSummaries, " ")

	keyPoints, err := s.generator.Generate(ctx, fmt.Sprintf(keyPointsPrompt, detailed))
	if err != nil {
		return EducationalSummary{}, fmt.Errorf("extract key points: %w", err)
	}

	return EducationalSummary{
		DetailedSummary: detailed,
		KeyPoints:       strings.TrimSpace(keyPoints),
	}, nil
}

// chunkTranscript splits text into chunks of at most maxSize characters
// without breaking words. A single word longer than maxSize becomes its own
// chunk.
func chunkTranscript(text string, maxSize int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > maxSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
