package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Draw renders text to a destination image with antialiasing, compositing
// with the Over operator. Position (x, y) is the baseline origin.
// Glyphs are clipped to dst.Bounds().
func Draw(dst draw.Image, text string, face *Face, x, y float64, col color.Color) {
	if text == "" || face == nil {
		return
	}
	sf, err := face.source.sfnt()
	if err != nil {
		return
	}

	glyphs := face.Shaper().Shape(text, face)
	if len(glyphs) == 0 {
		return
	}

	var (
		buf  sfnt.Buffer
		rast vector.Rasterizer
		src  = image.NewUniform(col)
		ppem = face.ppem()
		clip = dst.Bounds()
	)

	for _, g := range glyphs {
		segments, err := sf.LoadGlyph(&buf, g.GID, ppem, nil)
		if err != nil || len(segments) == 0 {
			// Spaces have no outline; colored glyphs are not supported.
			continue
		}

		ox, oy := x+g.X, y+g.Y
		r := glyphRect(segments.Bounds(), ox, oy).Intersect(clip)
		if r.Empty() {
			continue
		}

		rast.Reset(r.Dx(), r.Dy())
		traceOutline(&rast, segments, float32(ox-float64(r.Min.X)), float32(oy-float64(r.Min.Y)))
		rast.Draw(dst, r, src, image.Point{})
	}
}

// Measure returns the dimensions of text.
// Width is the shaped advance, height is the font's line height.
func Measure(text string, face *Face) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return face.Advance(text), face.Metrics().LineHeight()
}

// glyphRect returns the integer pixel rectangle covering outline bounds
// placed at origin (ox, oy).
func glyphRect(b fixed.Rectangle26_6, ox, oy float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(ox+fixedToFloat(b.Min.X))),
		int(math.Floor(oy+fixedToFloat(b.Min.Y))),
		int(math.Ceil(ox+fixedToFloat(b.Max.X))),
		int(math.Ceil(oy+fixedToFloat(b.Max.Y))),
	)
}

// traceOutline feeds sfnt segments to the rasterizer, offset by (dx, dy).
// Every contour is closed explicitly.
func traceOutline(rast *vector.Rasterizer, segments sfnt.Segments, dx, dy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				rast.ClosePath()
			}
			rast.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			rast.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			rast.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			rast.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		rast.ClosePath()
	}
}
