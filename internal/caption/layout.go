package caption

import (
	"fmt"

	"github.com/nguyentantai21042004/caption-studio/internal/typeset"
)

// Ratio of the frame width kept clear on each side of the caption box, and
// the vertical anchor for the first row of words.
const (
	xBufferRatio = 0.1
	yAnchorRatio = 0.75
	rowGap       = 10.0
)

// ClipGenerator lays out one caption line inside a frame, producing a base
// clip and a highlight clip per word.
type ClipGenerator interface {
	CreateClips(line Line, frameWidth, frameHeight int) ([]Clip, error)
}

type implClipGenerator struct {
	style    Style
	measurer typeset.Measurer
}

// NewClipGenerator creates the standard ClipGenerator using the given text
// measurer for word placement.
func NewClipGenerator(style Style, measurer typeset.Measurer) ClipGenerator {
	return &implClipGenerator{
		style:    style,
		measurer: measurer,
	}
}

// CreateClips places the line's words left to right inside a content box
// centered at 75% of the frame height, wrapping to a new row whenever the
// next word would start past the box's right edge. Per word it emits the
// base clip first and the highlight clip second, so each highlight layers
// above its own base when drawn in order. Any measurement failure discards
// the whole line's clip set.
func (g *implClipGenerator) CreateClips(line Line, frameWidth, frameHeight int) ([]Clip, error) {
	fw := float64(frameWidth)
	fh := float64(frameHeight)

	boxWidth := fw - 2*(fw*xBufferRatio)
	boxLeft := (fw - boxWidth) / 2
	boxRight := boxLeft + boxWidth

	spaceWidth, _, err := g.measurer.Measure(" ")
	if err != nil {
		return nil, &ClipGenerationError{Line: line.Text(), Err: fmt.Errorf("measure space: %w", err)}
	}

	x := boxLeft
	y := fh * yAnchorRatio

	clips := make([]Clip, 0, 2*len(line.Words))
	for _, word := range line.Words {
		width, height, err := g.measurer.Measure(word.Text)
		if err != nil {
			return nil, &ClipGenerationError{Line: line.Text(), Err: fmt.Errorf("measure %q: %w", word.Text, err)}
		}

		base := Clip{
			Text:   word.Text,
			Color:  g.style.TextColor,
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
			Start:  line.Start,
			End:    line.End,
		}
		highlight := Clip{
			Text:   word.Text,
			Color:  g.style.HighlightColor,
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
			Start:  word.Start,
			End:    word.End,
		}
		clips = append(clips, base, highlight)

		// Advance past this word; wrap when the next word would start
		// beyond the box's right edge.
		x += width + spaceWidth
		if x > boxRight {
			x = boxLeft
			y += height + rowGap
		}
	}

	return clips, nil
}
