package text

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// inkBounds returns the bounding box of pixels with non-zero alpha.
func inkBounds(img *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestDraw_RendersAboveBaseline(t *testing.T) {
	face := testSource(t).Face(32)
	dst := image.NewNRGBA(image.Rect(0, 0, 80, 60))

	Draw(dst, "H", face, 10, 40, color.Black)

	ink := inkBounds(dst)
	if ink.Empty() {
		t.Fatal("Draw produced no ink")
	}
	if ink.Max.Y > 41 {
		t.Errorf("H extends below the baseline: %v", ink)
	}
	capHeight := 40 - ink.Min.Y
	if capHeight < 18 || capHeight > 28 {
		t.Errorf("cap height = %d px, want about 23 for a 32px face", capHeight)
	}
	if ink.Min.X < 10 {
		t.Errorf("ink starts left of the origin: %v", ink)
	}
}

func TestDraw_Color(t *testing.T) {
	face := testSource(t).Face(32)
	dst := image.NewNRGBA(image.Rect(0, 0, 60, 60))
	Draw(dst, "I", face, 10, 40, color.NRGBA{R: 255, G: 128, A: 255})

	var opaque int
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i+3] == 0xff {
			opaque++
			if dst.Pix[i] != 255 || dst.Pix[i+1] != 128 || dst.Pix[i+2] != 0 {
				t.Fatalf("fully covered pixel = %v, want the text color", dst.Pix[i:i+4])
			}
		}
	}
	if opaque == 0 {
		t.Error("stem of I has no fully covered pixel")
	}
}

func TestDraw_ClipsToDestination(t *testing.T) {
	face := testSource(t).Face(48)
	base := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	sub := base.SubImage(image.Rect(20, 20, 40, 40)).(*image.NRGBA)

	// Origin far outside the sub-image on every side.
	for _, o := range [][2]float64{{-500, 30}, {500, 30}, {30, -500}, {30, 500}} {
		Draw(sub, "WWW", face, o[0], o[1], color.Black)
	}
	if !inkBounds(base).Empty() {
		t.Error("glyphs far outside the destination left ink")
	}

	// Partly overlapping text only writes inside the sub-image.
	Draw(sub, "WWW", face, 0, 50, color.Black)
	ink := inkBounds(base)
	if ink.Empty() {
		t.Fatal("overlapping text drew nothing")
	}
	if !ink.In(sub.Bounds()) {
		t.Errorf("ink %v escaped destination bounds %v", ink, sub.Bounds())
	}
}

func TestDraw_NoopCases(t *testing.T) {
	face := testSource(t).Face(16)
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 20))

	Draw(dst, "", face, 2, 15, color.Black)
	Draw(dst, "x", nil, 2, 15, color.Black)
	Draw(dst, "   ", face, 2, 15, color.Black)
	if !inkBounds(dst).Empty() {
		t.Error("no-op draws left ink")
	}
}

func TestDraw_OverComposites(t *testing.T) {
	face := testSource(t).Face(32)
	dst := image.NewNRGBA(image.Rect(0, 0, 60, 60))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.NRGBA{B: 255, A: 255}), image.Point{}, draw.Src)

	Draw(dst, "I", face, 10, 40, color.NRGBA{R: 255, A: 128})

	var blended bool
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] > 0 && dst.Pix[i+2] > 0 {
			blended = true
		}
		if dst.Pix[i+3] != 0xff {
			t.Fatalf("Over onto an opaque destination produced alpha %d", dst.Pix[i+3])
		}
	}
	if !blended {
		t.Error("half-transparent text did not blend with the background")
	}
}

func TestMeasure(t *testing.T) {
	face := testSource(t).Face(20)

	w, h := Measure("Hello", face)
	if w <= 0 {
		t.Errorf("width = %v, want > 0", w)
	}
	if h != face.Metrics().LineHeight() {
		t.Errorf("height = %v, want line height %v", h, face.Metrics().LineHeight())
	}

	ew, eh := Measure("", face)
	if ew != 0 || eh != h {
		t.Errorf("Measure(\"\") = (%v, %v), want (0, %v)", ew, eh, h)
	}

	if w, h := Measure("x", nil); w != 0 || h != 0 {
		t.Errorf("Measure with nil face = (%v, %v)", w, h)
	}
}

func TestGlyphRect(t *testing.T) {
	b := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.I(1) / 2, Y: -fixed.I(10)},
		Max: fixed.Point26_6{X: fixed.I(7), Y: fixed.I(2) + 16},
	}
	got := glyphRect(b, 10.25, 20)
	want := image.Rect(10, 10, 18, 23)
	if got != want {
		t.Errorf("glyphRect() = %v, want %v", got, want)
	}
}

func TestTraceOutlineClosesContours(t *testing.T) {
	// An open square: the rasterizer must still fill it.
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{{X: fixed.I(1), Y: fixed.I(1)}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: fixed.I(9), Y: fixed.I(1)}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: fixed.I(9), Y: fixed.I(9)}}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: fixed.I(1), Y: fixed.I(9)}}},
	}
	var rast vector.Rasterizer
	rast.Reset(10, 10)
	traceOutline(&rast, segs, 0, 0)

	dst := image.NewAlpha(image.Rect(0, 0, 10, 10))
	rast.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	if a := dst.AlphaAt(5, 5).A; a != 0xff {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := dst.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}
