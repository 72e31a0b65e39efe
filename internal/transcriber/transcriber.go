package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
)

// Transcribe extracts the audio track and runs whisper on it, returning the
// word timing sequence. Temporary audio and JSON files are removed before
// returning.
func (t *implTranscriber) Transcribe(ctx context.Context, videoPath string) ([]caption.Word, error) {
	audioPath, err := t.extractAudio(ctx, videoPath)
	if err != nil {
		return nil, err
	}
	defer t.removeTempFile(ctx, audioPath)

	words, err := t.transcribeAudio(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	t.logger.Info(ctx, "Transcription produced %d words", len(words))
	return words, nil
}

// extractAudio converts the video's audio to 16kHz mono WAV, the input
// format whisper expects.
func (t *implTranscriber) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_temp.wav"

	t.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn", // No video
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", &AudioExtractionError{Err: err}
	}

	return audioPath, nil
}

// transcribeAudio runs whisper with one word per segment and parses the
// resulting JSON into the word sequence.
func (t *implTranscriber) transcribeAudio(ctx context.Context, audioPath string) ([]caption.Word, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, audioPath)

	// -ml 1 caps each segment at one token, which yields per-word offsets
	// in the JSON output.
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-ml", "1",
		"-bo", "5",
		"--prompt", t.cfg.Prompt,
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, &TranscriptionError{Err: err}
	}

	jsonPath := outputPrefix + ".json"
	defer t.removeTempFile(ctx, jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, &TranscriptionError{Err: fmt.Errorf("read whisper output: %w", err)}
	}

	words, err := parseWhisperJSON(data)
	if err != nil {
		return nil, &TranscriptionError{Err: err}
	}

	return words, nil
}

type whisperOutput struct {
	Transcription []whisperSegment `json:"transcription"`
}

type whisperSegment struct {
	Offsets struct {
		From int64 `json:"from"`
		To   int64 `json:"to"`
	} `json:"offsets"`
	Text string `json:"text"`
}

// parseWhisperJSON converts whisper's segment list (offsets in milliseconds)
// into Words. Segments holding only whitespace are dropped.
func parseWhisperJSON(data []byte) ([]caption.Word, error) {
	var output whisperOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	words := make([]caption.Word, 0, len(output.Transcription))
	for _, segment := range output.Transcription {
		text := strings.TrimSpace(segment.Text)
		if text == "" {
			continue
		}
		words = append(words, caption.Word{
			Text:  text,
			Start: float64(segment.Offsets.From) / 1000,
			End:   float64(segment.Offsets.To) / 1000,
		})
	}

	return words, nil
}

func (t *implTranscriber) removeTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
