package caption

import "strings"

// Word is a single spoken word with its timing in seconds.
// Words are immutable once produced by the transcriber; screen placement
// lives on the Clips emitted by the layout stage, never on the Word itself.
type Word struct {
	Text  string
	Start float64
	End   float64
}

// Duration returns the word's own spoken duration.
func (w Word) Duration() float64 {
	return w.End - w.Start
}

// Line is an ordered, non-empty run of words displayed together as one
// on-screen caption unit. Start and End are derived from the words at
// construction and never change afterwards.
type Line struct {
	Words []Word
	Start float64
	End   float64
}

// NewLine builds a Line from words, deriving its time span. The words slice
// must be non-empty and in timestamp order.
func NewLine(words []Word) Line {
	start := words[0].Start
	end := words[0].End
	for _, w := range words[1:] {
		if w.Start < start {
			start = w.Start
		}
		if w.End > end {
			end = w.End
		}
	}
	return Line{Words: words, Start: start, End: end}
}

// Duration returns the wall-clock span of the line.
func (l Line) Duration() float64 {
	return l.End - l.Start
}

// Text returns the line's words joined by single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// Clip is one renderable timed text box: a word at a fixed position, visible
// during [Start, End). Each laid-out word yields two clips at the same
// position: a base clip spanning its line's duration and a highlight clip
// spanning only the word's own interval.
type Clip struct {
	Text   string
	Color  string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Start  float64
	End    float64
}

// Duration returns the clip's visible span.
func (c Clip) Duration() float64 {
	return c.End - c.Start
}

// Backdrop is the translucent box rendered behind the caption text,
// anchored bottom-center and spanning the whole video.
type Backdrop struct {
	Width   float64
	Height  float64
	Color   string
	Opacity float64
}

// Style configures how caption text is rendered.
type Style struct {
	FontPath          string
	FontSize          int
	TextColor         string
	HighlightColor    string
	StrokeColor       string
	StrokeWidth       float64
	BackgroundColor   string
	BackgroundOpacity float64
}

// Constraints bound how words are grouped into lines.
type Constraints struct {
	MaxCharsPerLine    int
	MaxDurationPerLine float64
	MaxGapBetweenWords float64
}
