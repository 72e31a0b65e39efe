package video

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
)

// Composition is the fully assembled plan for one output video: the filter
// graph drawing backdrop and caption clips over the source frames, plus the
// properties the writer needs. The composite always keeps the source's
// duration; captions never extend the video.
type Composition struct {
	FilterGraph string
	Duration    float64
	HasAudio    bool
}

// Compositor assembles the overlay plan for a loaded video.
type Compositor interface {
	Compose(info Info, clips []caption.Clip, backdrop caption.Backdrop) (Composition, error)
}

type implCompositor struct {
	style caption.Style
}

// NewCompositor creates the standard Compositor rendering with the given
// caption style.
func NewCompositor(style caption.Style) Compositor {
	return &implCompositor{style: style}
}

// Compose draws the backdrop first (bottom-center, whole video) and then one
// drawtext per clip in emission order, so later clips layer on top — each
// word's highlight above its own base. Every clip is windowed to its own
// interval with an enable expression.
func (c *implCompositor) Compose(info Info, clips []caption.Clip, backdrop caption.Backdrop) (Composition, error) {
	if len(clips) == 0 {
		return Composition{}, &CompositionError{Err: errors.New("no caption clips to compose")}
	}
	if c.style.FontPath == "" {
		return Composition{}, &CompositionError{Err: errors.New("caption style has no font file")}
	}

	filters := make([]string, 0, len(clips)+1)
	filters = append(filters, c.backdropFilter(backdrop))
	for _, clip := range clips {
		filters = append(filters, c.clipFilter(clip))
	}

	return Composition{
		FilterGraph: strings.Join(filters, ","),
		Duration:    info.Duration,
		HasAudio:    info.HasAudio,
	}, nil
}

func (c *implCompositor) backdropFilter(b caption.Backdrop) string {
	w := int(b.Width)
	h := int(b.Height)
	return fmt.Sprintf("drawbox=x=(iw-%d)/2:y=ih-%d:w=%d:h=%d:color=%s@%s:t=fill",
		w, h, w, h, b.Color, formatFloat(b.Opacity))
}

func (c *implCompositor) clipFilter(clip caption.Clip) string {
	return fmt.Sprintf("drawtext=fontfile=%s:text=%s:x=%s:y=%s:fontsize=%d:fontcolor=%s:bordercolor=%s:borderw=%s:enable='between(t\\,%s\\,%s)'",
		escapeDrawtext(c.style.FontPath),
		escapeDrawtext(clip.Text),
		formatFloat(clip.X),
		formatFloat(clip.Y),
		c.style.FontSize,
		clip.Color,
		c.style.StrokeColor,
		formatFloat(c.style.StrokeWidth),
		formatFloat(clip.Start),
		formatFloat(clip.End),
	)
}

// escapeDrawtext escapes the characters the drawtext filter treats as
// syntax inside a filter graph.
func escapeDrawtext(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`%`, `\%`,
		`,`, `\,`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return replacer.Replace(s)
}

// formatFloat renders a float without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
