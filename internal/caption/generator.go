package caption

import "errors"

// Generator turns a timed word sequence into the full overlay clip set plus
// the single backdrop sized to fit the largest laid-out word.
type Generator interface {
	Generate(words []Word, frameWidth, frameHeight int) ([]Clip, Backdrop, error)
}

type implGenerator struct {
	segmenter     Segmenter
	clipGenerator ClipGenerator
	style         Style
	constraints   Constraints
}

// NewGenerator wires a Segmenter and ClipGenerator into a caption Generator.
func NewGenerator(segmenter Segmenter, clipGenerator ClipGenerator, style Style, constraints Constraints) Generator {
	return &implGenerator{
		segmenter:     segmenter,
		clipGenerator: clipGenerator,
		style:         style,
		constraints:   constraints,
	}
}

// Generate segments the words into lines, lays every line out, and sizes the
// backdrop from the complete clip set. Any line failing layout aborts the
// whole caption stage; a partial caption track is never returned.
func (g *implGenerator) Generate(words []Word, frameWidth, frameHeight int) ([]Clip, Backdrop, error) {
	lines := g.segmenter.Segment(words, g.constraints)

	var clips []Clip
	for _, line := range lines {
		lineClips, err := g.clipGenerator.CreateClips(line, frameWidth, frameHeight)
		if err != nil {
			return nil, Backdrop{}, &CaptionGenerationError{Err: err}
		}
		clips = append(clips, lineClips...)
	}

	backdrop, err := g.sizeBackdrop(clips)
	if err != nil {
		return nil, Backdrop{}, err
	}

	return clips, backdrop, nil
}

// sizeBackdrop derives the translucent box behind the captions: 1.1x the
// largest clip in each dimension. An empty clip set cannot be sized and
// fails the whole stage.
func (g *implGenerator) sizeBackdrop(clips []Clip) (Backdrop, error) {
	if len(clips) == 0 {
		return Backdrop{}, &CaptionGenerationError{Err: errors.New("no clips to size backdrop from")}
	}

	maxWidth := 0.0
	maxHeight := 0.0
	for _, c := range clips {
		if c.Width > maxWidth {
			maxWidth = c.Width
		}
		if c.Height > maxHeight {
			maxHeight = c.Height
		}
	}

	return Backdrop{
		Width:   maxWidth * 1.1,
		Height:  maxHeight * 1.1,
		Color:   g.style.BackgroundColor,
		Opacity: g.style.BackgroundOpacity,
	}, nil
}
