package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
)

// Transcriber turns a video into its word-level timing sequence: one
// (text, start, end) entry per spoken word, starts non-decreasing. The
// pipeline never re-sorts the result.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath string) ([]caption.Word, error)
}
