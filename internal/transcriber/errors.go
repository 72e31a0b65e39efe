package transcriber

import "fmt"

// AudioExtractionError reports that the audio track could not be pulled out
// of the source video.
type AudioExtractionError struct {
	Err error
}

func (e *AudioExtractionError) Error() string {
	return fmt.Sprintf("extract audio: %v", e.Err)
}

func (e *AudioExtractionError) Unwrap() error {
	return e.Err
}

// TranscriptionError reports a failed or unusable transcription run.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe audio: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
