package caption

import "fmt"

// ClipGenerationError reports a failed layout for a single caption line.
// The line's whole clip set is discarded; there is no partial emission.
type ClipGenerationError struct {
	Line string
	Err  error
}

func (e *ClipGenerationError) Error() string {
	return fmt.Sprintf("create clips for line %q: %v", e.Line, e.Err)
}

func (e *ClipGenerationError) Unwrap() error {
	return e.Err
}

// CaptionGenerationError reports a failure of the whole caption stage.
// No caption track is ever composited after this error.
type CaptionGenerationError struct {
	Err error
}

func (e *CaptionGenerationError) Error() string {
	return fmt.Sprintf("generate captions: %v", e.Err)
}

func (e *CaptionGenerationError) Unwrap() error {
	return e.Err
}
