package kbridge

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/kbridge/internal/blend"
	"github.com/gogpu/kbridge/text"
)

// PutText draws s onto a MatBGR8 in place, with the left end of the text
// baseline at org.
//
// The text is first rendered in color c into a transparent glyph buffer as
// wide as the shaped text and as tall as one line, plus TextPadding on every
// side. Each glyph pixel with non-zero alpha is then blended onto the Mat:
//
//	dst = dst*(1-a) + src*a, a = alpha/255
//
// Pixels that land outside the Mat are skipped, so any org is valid,
// including points far outside the image. An empty s changes nothing.
//
// A fontSize of zero or less selects DefaultFontSize. The font is the one
// given by WithFont, else DefaultFont.
//
// PutText returns ErrNilMat for a nil Mat and an *UnsupportedFormatError for
// any Mat type other than MatBGR8. The Mat must not be used concurrently.
func PutText(m *Mat, s string, org image.Point, c color.Color, fontSize float64, opts ...TextOption) error {
	if m == nil {
		return ErrNilMat
	}
	if m.typ != MatBGR8 {
		Logger().Warn("kbridge: PutText needs an 8UC3 mat", "type", m.typ.String())
		return &UnsupportedFormatError{Op: "PutText", Format: m.typ.String()}
	}
	if c == nil {
		c = color.Black
	}

	o := defaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	face := o.face(fontSize)
	glyphs := renderGlyphBuffer(s, face, c, o.padding)
	Logger().Debug("kbridge: put text", "font", face.Source().Name(), "size", face.Size(),
		"glyphBuffer", glyphs.Rect.Size().String(), "org", org.String())

	compositeGlyphs(m, glyphs, org, o.padding)
	return nil
}

// MeasureText returns the glyph buffer size PutText would allocate for s:
// the shaped width and line height rounded up, plus padding on every side.
func MeasureText(s string, fontSize float64, opts ...TextOption) image.Point {
	o := defaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return glyphBufferSize(s, o.face(fontSize), o.padding)
}

// face resolves the font source, size and shaper into a text.Face.
func (o *textOptions) face(fontSize float64) *text.Face {
	src := o.font
	if src == nil {
		src = DefaultFont()
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize()
	}
	var faceOpts []text.FaceOption
	if o.shaper != nil {
		faceOpts = append(faceOpts, text.WithShaper(o.shaper))
	}
	return src.Face(fontSize, faceOpts...)
}

func glyphBufferSize(s string, face *text.Face, padding int) image.Point {
	w, h := text.Measure(s, face)
	return image.Point{
		X: int(math.Ceil(w)) + padding*2,
		Y: int(math.Ceil(h)) + padding*2,
	}
}

// renderGlyphBuffer renders s into a transparent straight-alpha buffer with
// the baseline origin at (padding, height-padding).
func renderGlyphBuffer(s string, face *text.Face, c color.Color, padding int) *image.NRGBA {
	size := glyphBufferSize(s, face, padding)
	buf := image.NewNRGBA(image.Rectangle{Max: size})
	text.Draw(buf, s, face, float64(padding), float64(size.Y-padding), c)
	return buf
}

// compositeGlyphs blends every visible glyph pixel onto m. Glyph pixel
// (i, j) lands on (i + org.X - padding, j + org.Y - height + padding).
func compositeGlyphs(m *Mat, glyphs *image.NRGBA, org image.Point, padding int) {
	w, h := glyphs.Rect.Dx(), glyphs.Rect.Dy()
	dx := org.X - padding
	dy := org.Y - h + padding

	for j := range h {
		my := j + dy
		if my < 0 || my >= m.rows {
			continue
		}
		row := glyphs.Pix[j*glyphs.Stride : j*glyphs.Stride+w*4]
		for i := range w {
			px := row[i*4 : i*4+4]
			if px[3] == 0 {
				continue
			}
			mx := i + dx
			if mx < 0 || mx >= m.cols {
				continue
			}
			blend.OverBGR(m.Pixel(mx, my), px[0], px[1], px[2], px[3])
		}
	}
}
