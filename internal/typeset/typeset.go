package typeset

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type implMeasurer struct {
	face font.Face
}

// New loads the TrueType/OpenType font at fontPath and returns a Measurer
// for the given point size at 72 DPI, which makes points equal pixels — the
// same convention ffmpeg's drawtext uses for fontsize. A Measurer is not
// safe for concurrent use; each processing run builds its own.
func New(fontPath string, fontSize int) (Measurer, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(fontSize),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return &implMeasurer{face: face}, nil
}

// Measure returns the advance width of text and the face's line height,
// both in pixels.
func (m *implMeasurer) Measure(text string) (float64, float64, error) {
	width := font.MeasureString(m.face, text)
	metrics := m.face.Metrics()
	height := metrics.Ascent + metrics.Descent
	return fixedToPixels(width), fixedToPixels(height), nil
}

// fixedToPixels converts a 26.6 fixed-point value to pixels.
func fixedToPixels(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
