package video

import "fmt"

// VideoLoadError reports that the source video could not be opened or probed.
type VideoLoadError struct {
	Path string
	Err  error
}

func (e *VideoLoadError) Error() string {
	return fmt.Sprintf("load video %s: %v", e.Path, e.Err)
}

func (e *VideoLoadError) Unwrap() error {
	return e.Err
}

// CompositionError reports a contract violation while assembling the
// composite stream, such as a caption clip with no usable time window.
// Out-of-range end times are not errors; they are clamped with a warning.
type CompositionError struct {
	Err error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose video: %v", e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}

// VideoWriteError reports a failed encode. The partial temporary file is
// removed before this error is returned; the destination path never sees a
// partially written file.
type VideoWriteError struct {
	Err error
}

func (e *VideoWriteError) Error() string {
	return fmt.Sprintf("write video: %v", e.Err)
}

func (e *VideoWriteError) Unwrap() error {
	return e.Err
}
