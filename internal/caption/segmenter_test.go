package caption

import (
	"strings"
	"testing"
)

func defaultConstraints() Constraints {
	return Constraints{
		MaxCharsPerLine:    30,
		MaxDurationPerLine: 2.5,
		MaxGapBetweenWords: 1.5,
	}
}

func TestSegmentEmpty(t *testing.T) {
	s := NewSegmenter()
	lines := s.Segment(nil, defaultConstraints())
	if len(lines) != 0 {
		t.Errorf("Segment(nil) = %d lines, want 0", len(lines))
	}
}

func TestSegmentGapScenario(t *testing.T) {
	// Gap of 2.0s before "today" exceeds the 1.5s limit, so "today" closes
	// into its own line the moment it is appended.
	words := []Word{
		{Text: "Hello", Start: 0.0, End: 0.5},
		{Text: "world", Start: 0.6, End: 1.0},
		{Text: "today", Start: 3.0, End: 3.4},
	}

	s := NewSegmenter()
	lines := s.Segment(words, defaultConstraints())

	if len(lines) != 2 {
		t.Fatalf("Segment() = %d lines, want 2", len(lines))
	}
	if got := lines[0].Text(); got != "Hello world" {
		t.Errorf("lines[0].Text() = %q, want %q", got, "Hello world")
	}
	if got := lines[1].Text(); got != "today" {
		t.Errorf("lines[1].Text() = %q, want %q", got, "today")
	}
}

func TestSegmentLineTiming(t *testing.T) {
	words := []Word{
		{Text: "Hello", Start: 0.0, End: 0.5},
		{Text: "world", Start: 0.6, End: 1.0},
	}

	s := NewSegmenter()
	lines := s.Segment(words, defaultConstraints())
	if len(lines) != 1 {
		t.Fatalf("Segment() = %d lines, want 1", len(lines))
	}

	line := lines[0]
	if line.Start != 0.0 || line.End != 1.0 {
		t.Errorf("line span = [%v, %v], want [0, 1]", line.Start, line.End)
	}
	if line.Duration() != line.End-line.Start {
		t.Errorf("Duration() = %v, want %v", line.Duration(), line.End-line.Start)
	}
}

func TestSegmentCharLimit(t *testing.T) {
	// The word crossing the character limit stays in the line it was
	// appended to; limits are soft by one word.
	words := []Word{
		{Text: "aaaaaaaaaa", Start: 0.0, End: 0.1},
		{Text: "bbbbbbbbbb", Start: 0.1, End: 0.2},
		{Text: "cccccccccc", Start: 0.2, End: 0.3},
		{Text: "d", Start: 0.3, End: 0.4},
	}

	s := NewSegmenter()
	lines := s.Segment(words, defaultConstraints())

	if len(lines) != 2 {
		t.Fatalf("Segment() = %d lines, want 2", len(lines))
	}
	if got := lines[0].Text(); len(got) <= 30 {
		t.Errorf("first line %q should exceed the 30-char limit by the triggering word", got)
	}
	if got := lines[1].Text(); got != "d" {
		t.Errorf("lines[1].Text() = %q, want %q", got, "d")
	}
}

func TestSegmentSingleOversizedWord(t *testing.T) {
	words := []Word{
		{Text: strings.Repeat("x", 50), Start: 0.0, End: 0.5},
	}

	s := NewSegmenter()
	lines := s.Segment(words, defaultConstraints())

	if len(lines) != 1 {
		t.Fatalf("Segment() = %d lines, want 1", len(lines))
	}
	if len(lines[0].Words) != 1 {
		t.Errorf("oversized word should form exactly one one-word line, got %d words", len(lines[0].Words))
	}
}

func TestSegmentDurationLimit(t *testing.T) {
	// Accumulated spoken duration (sum of word durations, not wall-clock
	// span) crosses 2.5s on the third word.
	words := []Word{
		{Text: "a", Start: 0.0, End: 1.0},
		{Text: "b", Start: 1.0, End: 2.0},
		{Text: "c", Start: 2.0, End: 3.0},
		{Text: "d", Start: 3.0, End: 3.5},
	}

	s := NewSegmenter()
	lines := s.Segment(words, defaultConstraints())

	if len(lines) != 2 {
		t.Fatalf("Segment() = %d lines, want 2", len(lines))
	}
	if got := lines[0].Text(); got != "a b c" {
		t.Errorf("lines[0].Text() = %q, want %q", got, "a b c")
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	words := []Word{
		{Text: "one", Start: 0.0, End: 0.3},
		{Text: "two", Start: 0.3, End: 0.6},
		{Text: "three", Start: 2.5, End: 2.9},
		{Text: "four", Start: 2.9, End: 3.1},
		{Text: "supercalifragilisticexpialidocious", Start: 3.2, End: 4.5},
		{Text: "five", Start: 4.6, End: 4.9},
	}

	s := NewSegmenter()
	lines := s.Segment(words, defaultConstraints())

	var flattened []Word
	for _, line := range lines {
		if len(line.Words) == 0 {
			t.Fatal("emitted an empty line")
		}
		flattened = append(flattened, line.Words...)
	}

	if len(flattened) != len(words) {
		t.Fatalf("flattened %d words, want %d", len(flattened), len(words))
	}
	for i := range words {
		if flattened[i] != words[i] {
			t.Errorf("word %d = %+v, want %+v", i, flattened[i], words[i])
		}
	}
}
