package typeset

// Measurer reports the rendered pixel size of a piece of text at a fixed
// font and size. The caption layout engine uses it to place words without
// ever rasterizing anything itself.
type Measurer interface {
	Measure(text string) (width, height float64, err error)
}
