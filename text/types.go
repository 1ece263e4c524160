package text

import "golang.org/x/image/font/sfnt"

// Direction is the writing direction used when shaping a run.
type Direction int

const (
	// DirectionAuto resolves the direction from the text with the Unicode
	// bidirectional algorithm.
	DirectionAuto Direction = iota
	// DirectionLTR is left-to-right text (English, French, Chinese).
	DirectionLTR
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAuto:
		return "Auto"
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Unknown"
	}
}

// Hinting selects outline hinting for metrics and advances.
type Hinting int

const (
	// HintingNone keeps fractional advances and metrics.
	HintingNone Hinting = iota
	// HintingFull rounds advances and metrics to whole pixels.
	HintingFull
)

// Metrics holds vertical font metrics in pixels at a face's size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line (positive).
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the line (positive).
	Descent float64
	// Height is the recommended distance between consecutive baselines.
	Height float64
	// XHeight is the height of a lowercase x.
	XHeight float64
	// CapHeight is the height of an uppercase letter.
	CapHeight float64
}

// LineHeight returns the height of one line of text.
func (m Metrics) LineHeight() float64 {
	return m.Height
}

// ShapedGlyph is a glyph positioned relative to the start of the run's
// baseline. X grows right and Y grows down.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID sfnt.GlyphIndex
	// Cluster is the index of the first rune that produced this glyph.
	Cluster int
	// X and Y are the pen offset of the glyph origin.
	X, Y float64
	// XAdvance is how far the pen moves after this glyph.
	XAdvance float64
}

// runAdvance returns the total advance of a shaped run.
func runAdvance(glyphs []ShapedGlyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.XAdvance
	}
	return w
}
