package caption

// Segmenter groups a timed word sequence into caption lines.
type Segmenter interface {
	Segment(words []Word, constraints Constraints) []Line
}

type implSegmenter struct{}

// NewSegmenter creates the standard greedy Segmenter.
func NewSegmenter() Segmenter {
	return &implSegmenter{}
}

// Segment walks the words once, accumulating a line and closing it whenever
// a limit is crossed. A word crossing the character or duration limit stays
// in the line it was just appended to, so those limits are soft by up to one
// word. An oversized gap instead closes the accumulated line before the gap:
// the word after the gap begins a new line, and the gap check firing again
// on that word closes it into a line of its own. An empty input yields an
// empty result.
func (s *implSegmenter) Segment(words []Word, constraints Constraints) []Line {
	var lines []Line
	var current []Word
	currentDuration := 0.0

	for i, word := range words {
		if i > 0 && len(current) > 0 && word.Start-words[i-1].End > constraints.MaxGapBetweenWords {
			lines = append(lines, NewLine(current))
			current = nil
			currentDuration = 0
		}

		current = append(current, word)
		// Spoken duration, not wall-clock span: gaps between words don't count.
		currentDuration += word.Duration()

		if s.shouldBreak(current, currentDuration, words, i, constraints) {
			lines = append(lines, NewLine(current))
			current = nil
			currentDuration = 0
		}
	}

	if len(current) > 0 {
		lines = append(lines, NewLine(current))
	}

	return lines
}

func (s *implSegmenter) shouldBreak(current []Word, currentDuration float64, all []Word, i int, constraints Constraints) bool {
	if len(NewLine(current).Text()) > constraints.MaxCharsPerLine {
		return true
	}

	if currentDuration > constraints.MaxDurationPerLine {
		return true
	}

	if i > 0 {
		gap := all[i].Start - all[i-1].End
		if gap > constraints.MaxGapBetweenWords {
			return true
		}
	}

	return false
}
