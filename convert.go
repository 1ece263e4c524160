package kbridge

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// MatToImage converts a Mat to an Image. The result never aliases m.
//
//   - MatGray8 becomes FormatIndexed8 with a gray palette.
//   - MatBGR8 becomes FormatRGB888 with red and blue exchanged.
//   - MatBGRA8 becomes FormatARGB32; the byte layout is identical.
//
// Any other layout returns an *UnsupportedFormatError.
func MatToImage(m *Mat) (*Image, error) {
	if m == nil {
		return nil, ErrNilMat
	}
	Logger().Debug("kbridge: mat to image", "type", m.typ.String(), "rows", m.rows, "cols", m.cols)

	switch m.typ {
	case MatGray8:
		img, err := NewImage(m.cols, m.rows, FormatIndexed8)
		if err != nil {
			return nil, err
		}
		img.SetPalette(GrayPalette())
		for y := range m.rows {
			copy(img.ScanLine(y), m.Row(y))
		}
		return img, nil

	case MatBGR8:
		view, err := ImageFromBytes(m.data, m.cols, m.rows, m.step, FormatRGB888)
		if err != nil {
			return nil, err
		}
		return view.RGBSwapped(), nil

	case MatBGRA8:
		view, err := ImageFromBytes(m.data, m.cols, m.rows, m.step, FormatARGB32)
		if err != nil {
			return nil, err
		}
		return view.Copy(), nil
	}

	Logger().Warn("kbridge: mat could not be converted to image", "type", m.typ.String())
	return nil, &UnsupportedFormatError{Op: "MatToImage", Format: m.typ.String()}
}

// ImageToMat converts an Image to a Mat.
//
//   - FormatARGB32, FormatRGB32 and FormatARGB32Premultiplied become a
//     MatBGRA8 view over the image memory. Premultiplied data is not
//     unpremultiplied and the RGB32 filler byte is exposed as alpha.
//   - FormatRGB888 becomes a MatBGR8 copy with red and blue exchanged;
//     img is not modified.
//   - FormatIndexed8 becomes a MatGray8 view when the palette is absent or the
//     identity gray ramp, and a MatGray8 copy holding each entry's luma
//     otherwise.
//
// A view must not outlive img. Any other layout returns an
// *UnsupportedFormatError.
func ImageToMat(img *Image) (*Mat, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	Logger().Debug("kbridge: image to mat", "format", img.format.String(), "width", img.width, "height", img.height)

	switch img.format {
	case FormatARGB32, FormatRGB32, FormatARGB32Premultiplied:
		return MatFromBytes(img.data, img.height, img.width, MatBGRA8, img.stride)

	case FormatRGB888:
		m, err := NewMat(img.height, img.width, MatBGR8)
		if err != nil {
			return nil, err
		}
		for y := range img.height {
			row := m.Row(y)
			copy(row, img.ScanLine(y))
			swapRB(row, 3)
		}
		return m, nil

	case FormatIndexed8:
		if isGrayRamp(img.palette) {
			return MatFromBytes(img.data, img.height, img.width, MatGray8, img.stride)
		}
		lut := paletteLuma(img.palette)
		m, err := NewMat(img.height, img.width, MatGray8)
		if err != nil {
			return nil, err
		}
		for y := range img.height {
			dst := m.Row(y)
			for x, idx := range img.ScanLine(y) {
				dst[x] = lut[idx]
			}
		}
		return m, nil
	}

	Logger().Warn("kbridge: image could not be converted to mat", "format", img.format.String())
	return nil, &UnsupportedFormatError{Op: "ImageToMat", Format: img.format.String()}
}

// isGrayRamp reports whether p is empty or maps every index to the equal
// gray level, so palette indices can be read as gray values directly.
func isGrayRamp(p color.Palette) bool {
	if len(p) == 0 {
		return true
	}
	if len(p) != 256 {
		return false
	}
	for i, c := range p {
		r, g, b, a := c.RGBA()
		v := uint32(i) * 0x101
		if r != v || g != v || b != v || a != 0xffff {
			return false
		}
	}
	return true
}

// paletteLuma maps every possible index to the luma of its palette entry.
// Indices past the end of the palette map to black.
func paletteLuma(p color.Palette) [256]uint8 {
	var lut [256]uint8
	for i := 0; i < len(p) && i < 256; i++ {
		n := color.NRGBAModel.Convert(p[i]).(color.NRGBA)
		lut[i] = luma(n.R, n.G, n.B)
	}
	return lut
}

// luma returns the ITU-R BT.601 luma of straight (non-premultiplied) RGB,
// using the same weights as color.GrayModel.
func luma(r, g, b uint8) uint8 {
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint8(y) //nolint:gosec // weights sum to 1<<16
}

// MatFromStdImage copies any image.Image into a new Mat of type t.
// Alpha is dropped for MatGray8 and MatBGR8 without compositing.
func MatFromStdImage(src image.Image, t MatType) (*Mat, error) {
	if !t.IsValid() {
		return nil, &UnsupportedFormatError{Op: "MatFromStdImage", Format: t.String()}
	}
	b := src.Bounds()
	m, err := NewMat(b.Dy(), b.Dx(), t)
	if err != nil {
		return nil, err
	}

	// Fast path for grayscale sources.
	if gray, ok := src.(*image.Gray); ok && t == MatGray8 {
		for y := range m.rows {
			start := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(m.Row(y), gray.Pix[start:start+m.cols])
		}
		return m, nil
	}

	nrgba := imaging.Clone(src)
	for y := range m.rows {
		srow := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+m.cols*4]
		drow := m.Row(y)
		for x := range m.cols {
			s := srow[x*4 : x*4+4]
			switch t {
			case MatGray8:
				drow[x] = luma(s[0], s[1], s[2])
			case MatBGR8:
				d := drow[x*3 : x*3+3]
				d[0], d[1], d[2] = s[2], s[1], s[0]
			case MatBGRA8:
				d := drow[x*4 : x*4+4]
				d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
			}
		}
	}
	return m, nil
}

// ToStdImage copies the Mat into a standard library image:
// *image.Gray for MatGray8 and *image.NRGBA otherwise.
func (m *Mat) ToStdImage() image.Image {
	rect := image.Rect(0, 0, m.cols, m.rows)

	if m.typ == MatGray8 {
		gray := image.NewGray(rect)
		for y := range m.rows {
			copy(gray.Pix[y*gray.Stride:], m.Row(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	bpp := m.typ.BytesPerPixel()
	for y := range m.rows {
		srow := m.Row(y)
		drow := nrgba.Pix[y*nrgba.Stride:]
		for x := range m.cols {
			s := srow[x*bpp : x*bpp+bpp]
			d := drow[x*4 : x*4+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], 0xff
			if bpp == 4 {
				d[3] = s[3]
			}
		}
	}
	return nrgba
}
