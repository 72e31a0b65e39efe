package processor

import "context"

// Processor runs the full captioning pipeline for one video file.
type Processor interface {
	Process(ctx context.Context, videoPath string) error
}
