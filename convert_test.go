package kbridge

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestMatToImageBGR(t *testing.T) {
	m, _ := NewMatWithStep(2, 2, MatBGR8, 8)
	m.SetPixel(0, 0, 1, 2, 3)
	m.SetPixel(1, 1, 10, 20, 30)

	img, err := MatToImage(m)
	if err != nil {
		t.Fatalf("MatToImage() error = %v", err)
	}
	if img.Format() != FormatRGB888 || img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("got %v %dx%d, want RGB888 2x2", img.Format(), img.Width(), img.Height())
	}
	if got := img.ScanLine(0)[:3]; got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Errorf("pixel (0, 0) = %v, want [3 2 1]", got)
	}
	if got := img.ScanLine(1)[3:6]; got[0] != 30 || got[1] != 20 || got[2] != 10 {
		t.Errorf("pixel (1, 1) = %v, want [30 20 10]", got)
	}

	// The image never aliases the mat.
	img.ScanLine(0)[0] = 99
	if m.Pixel(0, 0)[2] != 3 {
		t.Error("MatToImage result aliases the mat")
	}
}

func TestMatToImageGray(t *testing.T) {
	m, _ := NewMat(1, 3, MatGray8)
	copy(m.Row(0), []byte{0, 128, 255})

	img, err := MatToImage(m)
	if err != nil {
		t.Fatalf("MatToImage() error = %v", err)
	}
	if img.Format() != FormatIndexed8 || len(img.Palette()) != 256 {
		t.Fatalf("got %v with %d palette entries, want Indexed8 with 256", img.Format(), len(img.Palette()))
	}
	if g := color.GrayModel.Convert(img.At(1, 0)).(color.Gray); g.Y != 128 {
		t.Errorf("At(1, 0) = %v, want gray 128", g)
	}
}

func TestMatToImageBGRA(t *testing.T) {
	m, _ := NewMat(1, 1, MatBGRA8)
	m.SetPixel(0, 0, 10, 20, 30, 40)
	img, err := MatToImage(m)
	if err != nil {
		t.Fatalf("MatToImage() error = %v", err)
	}
	if img.Format() != FormatARGB32 {
		t.Fatalf("Format() = %v, want ARGB32", img.Format())
	}
	if got := img.At(0, 0).(color.NRGBA); got != (color.NRGBA{R: 30, G: 20, B: 10, A: 40}) {
		t.Errorf("At(0, 0) = %v", got)
	}
}

func TestMatToImageErrors(t *testing.T) {
	if _, err := MatToImage(nil); !errors.Is(err, ErrNilMat) {
		t.Errorf("nil mat error = %v", err)
	}
	bad := &Mat{typ: MatType(9)}
	_, err := MatToImage(bad)
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) || ufe.Op != "MatToImage" {
		t.Errorf("error = %v, want *UnsupportedFormatError from MatToImage", err)
	}
}

func TestImageToMat(t *testing.T) {
	t.Run("ARGB32 is a view", func(t *testing.T) {
		img, _ := NewImage(2, 2, FormatARGB32)
		img.Set(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
		m, err := ImageToMat(img)
		if err != nil {
			t.Fatalf("ImageToMat() error = %v", err)
		}
		if m.Type() != MatBGRA8 {
			t.Fatalf("Type() = %v, want 8UC4", m.Type())
		}
		if got := m.Pixel(1, 0); got[0] != 3 || got[1] != 2 || got[2] != 1 || got[3] != 4 {
			t.Errorf("Pixel(1, 0) = %v, want [3 2 1 4]", got)
		}
		m.SetPixel(0, 1, 255)
		if img.ScanLine(1)[0] != 255 {
			t.Error("ARGB32 conversion should share memory")
		}
	})

	t.Run("RGB888 is a swapped copy", func(t *testing.T) {
		img, _ := NewImage(2, 1, FormatRGB888)
		copy(img.ScanLine(0), []byte{1, 2, 3, 4, 5, 6})
		m, err := ImageToMat(img)
		if err != nil {
			t.Fatalf("ImageToMat() error = %v", err)
		}
		if m.Type() != MatBGR8 {
			t.Fatalf("Type() = %v, want 8UC3", m.Type())
		}
		if got := m.Row(0); got[0] != 3 || got[2] != 1 || got[3] != 6 || got[5] != 4 {
			t.Errorf("Row(0) = %v, want [3 2 1 6 5 4]", got)
		}
		if img.ScanLine(0)[0] != 1 {
			t.Error("ImageToMat modified the source image")
		}
	})

	t.Run("Indexed8 gray ramp is a view", func(t *testing.T) {
		img, _ := NewImage(3, 1, FormatIndexed8)
		img.SetPalette(GrayPalette())
		copy(img.ScanLine(0), []byte{5, 6, 7})
		m, err := ImageToMat(img)
		if err != nil {
			t.Fatalf("ImageToMat() error = %v", err)
		}
		if m.Type() != MatGray8 || m.Pixel(2, 0)[0] != 7 {
			t.Errorf("got %v pixel %v, want 8UC1 with value 7", m.Type(), m.Pixel(2, 0))
		}
	})

	t.Run("Indexed8 color palette maps to luma", func(t *testing.T) {
		img, _ := NewImage(2, 1, FormatIndexed8)
		img.SetPalette(color.Palette{color.White, color.NRGBA{R: 255, A: 255}})
		copy(img.ScanLine(0), []byte{0, 1})
		m, err := ImageToMat(img)
		if err != nil {
			t.Fatalf("ImageToMat() error = %v", err)
		}
		if got := m.Row(0); got[0] != 255 || got[1] != 76 {
			t.Errorf("Row(0) = %v, want [255 76]", got)
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := ImageToMat(nil); !errors.Is(err, ErrNilImage) {
			t.Errorf("nil image error = %v", err)
		}
		if _, err := ImageToMat(&Image{}); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("invalid format error = %v", err)
		}
	})
}

func TestMatImageRoundTrip(t *testing.T) {
	for _, typ := range []MatType{MatGray8, MatBGR8, MatBGRA8} {
		t.Run(typ.String(), func(t *testing.T) {
			m, _ := NewMat(5, 7, typ)
			for i := range m.Data() {
				m.Data()[i] = byte(i * 31)
			}
			img, err := MatToImage(m)
			if err != nil {
				t.Fatalf("MatToImage() error = %v", err)
			}
			back, err := ImageToMat(img)
			if err != nil {
				t.Fatalf("ImageToMat() error = %v", err)
			}
			if !back.Equal(m) {
				t.Error("round trip changed the pixels")
			}
		})
	}
}

func TestMatFromStdImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 4))
	src.SetNRGBA(3, 3, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	bgr, err := MatFromStdImage(src, MatBGR8)
	if err != nil {
		t.Fatalf("MatFromStdImage() error = %v", err)
	}
	if bgr.Rows() != 1 || bgr.Cols() != 2 {
		t.Fatalf("size = %dx%d, want 2x1", bgr.Cols(), bgr.Rows())
	}
	if got := bgr.Pixel(1, 0); got[0] != 50 || got[1] != 100 || got[2] != 200 {
		t.Errorf("BGR pixel = %v, want [50 100 200]", got)
	}

	bgra, _ := MatFromStdImage(src, MatBGRA8)
	if got := bgra.Pixel(1, 0)[3]; got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix[1] = 42
	g, _ := MatFromStdImage(gray, MatGray8)
	if g.Pixel(1, 0)[0] != 42 {
		t.Errorf("gray fast path = %d, want 42", g.Pixel(1, 0)[0])
	}

	if _, err := MatFromStdImage(src, MatType(7)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("invalid type error = %v", err)
	}
}

func TestMatToStdImage(t *testing.T) {
	m, _ := NewMat(1, 1, MatBGR8)
	m.SetPixel(0, 0, 1, 2, 3)
	n, ok := m.ToStdImage().(*image.NRGBA)
	if !ok {
		t.Fatalf("ToStdImage() = %T, want *image.NRGBA", m.ToStdImage())
	}
	if got := n.NRGBAAt(0, 0); got != (color.NRGBA{R: 3, G: 2, B: 1, A: 255}) {
		t.Errorf("NRGBAAt(0, 0) = %v", got)
	}

	g, _ := NewMat(1, 1, MatGray8)
	if _, ok := g.ToStdImage().(*image.Gray); !ok {
		t.Errorf("gray ToStdImage() = %T, want *image.Gray", g.ToStdImage())
	}
}
