package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource at a specific size.
// It is a lightweight value that shares the source's parsed font.
// Face is safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Direction returns the configured writing direction.
func (f *Face) Direction() Direction { return f.config.direction }

// Language returns the configured language tag.
func (f *Face) Language() string { return f.config.language }

// Shaper returns the shaper pinned with WithShaper, or the process-wide one.
func (f *Face) Shaper() Shaper {
	if f.config.shaper != nil {
		return f.config.shaper
	}
	return GetShaper()
}

// ppem returns the face size in 26.6 fixed point.
func (f *Face) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

func (f *Face) hinting() font.Hinting {
	if f.config.hinting == HintingFull {
		return font.HintingFull
	}
	return font.HintingNone
}

// Metrics returns the vertical metrics at this face's size.
// A closed source yields zero metrics.
func (f *Face) Metrics() Metrics {
	sf, err := f.source.sfnt()
	if err != nil {
		return Metrics{}
	}
	var buf sfnt.Buffer
	m, err := sf.Metrics(&buf, f.ppem(), f.hinting())
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		Height:    fixedToFloat(m.Height),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the width of text when shaped with this face.
func (f *Face) Advance(text string) float64 {
	return runAdvance(f.Shaper().Shape(text, f))
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
func (f *Face) HasGlyph(r rune) bool {
	sf, err := f.source.sfnt()
	if err != nil {
		return false
	}
	var buf sfnt.Buffer
	gid, err := sf.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
