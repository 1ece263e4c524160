package kbridge

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a raster buffer in the Qt convention: RGB888 rows, 32-bit ARGB
// words, or palette indices, with scanlines padded to a 4-byte boundary when
// the Image allocates them itself.
//
// Image implements image.Image and draw.Image, so it can be passed directly
// to Go encoders and drawing code.
type Image struct {
	data    []byte
	width   int
	height  int
	stride  int
	format  ImageFormat
	palette color.Palette
}

var _ draw.Image = (*Image)(nil)

// alignedStride returns rowBytes rounded up to a multiple of 4.
func alignedStride(rowBytes int) int {
	return (rowBytes + 3) &^ 3
}

// NewImage allocates a zeroed Image with 4-byte aligned scanlines.
// Indexed8 images start without a palette; At treats indices as gray levels
// until SetPalette is called.
func NewImage(width, height int, f ImageFormat) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !f.IsValid() {
		return nil, &UnsupportedFormatError{Op: "NewImage", Format: f.String()}
	}
	stride := alignedStride(f.RowBytes(width))
	return &Image{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: f,
	}, nil
}

// ImageFromBytes wraps existing data as an Image without copying.
// The caller must keep data alive for the lifetime of the Image.
func ImageFromBytes(data []byte, width, height, stride int, f ImageFormat) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !f.IsValid() {
		return nil, &UnsupportedFormatError{Op: "ImageFromBytes", Format: f.String()}
	}
	if stride < f.RowBytes(width) {
		return nil, ErrInvalidStep
	}
	need := requiredBytes(height, stride, f.RowBytes(width))
	if len(data) < need {
		return nil, ErrDataTooSmall
	}
	return &Image{
		data:   data[:need],
		width:  width,
		height: height,
		stride: stride,
		format: f,
	}, nil
}

// GrayPalette returns a 256-entry palette mapping index i to gray level i.
func GrayPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)} //nolint:gosec // i < 256
	}
	return p
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Stride returns the number of bytes per scanline, including padding.
func (img *Image) Stride() int { return img.stride }

// Format returns the pixel layout.
func (img *Image) Format() ImageFormat { return img.format }

// IsNull reports whether the image has no pixels.
func (img *Image) IsNull() bool { return img == nil || img.width == 0 || img.height == 0 }

// Data returns the raw backing slice, including scanline padding.
func (img *Image) Data() []byte { return img.data }

// Palette returns the color table of an Indexed8 image. It may be nil.
func (img *Image) Palette() color.Palette { return img.palette }

// SetPalette replaces the color table of an Indexed8 image.
func (img *Image) SetPalette(p color.Palette) { img.palette = p }

// ScanLine returns the pixel bytes of row y without padding, or nil if y is
// out of range. The slice aliases the Image.
func (img *Image) ScanLine(y int) []byte {
	if y < 0 || y >= img.height {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.format.RowBytes(img.width)]
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	switch img.format {
	case FormatIndexed8:
		if len(img.palette) > 0 {
			return img.palette
		}
		return color.GrayModel
	case FormatARGB32Premultiplied:
		return color.RGBAModel
	default:
		return color.NRGBAModel
	}
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.NRGBA{}
	}
	off := y*img.stride + x*img.format.BytesPerPixel()
	p := img.data[off:]
	switch img.format {
	case FormatIndexed8:
		idx := int(p[0])
		if len(img.palette) == 0 {
			return color.Gray{Y: p[0]}
		}
		if idx >= len(img.palette) {
			return color.Black
		}
		return img.palette[idx]
	case FormatRGB888:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	case FormatRGB32:
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: 0xff}
	case FormatARGB32:
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
	case FormatARGB32Premultiplied:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
	default:
		return color.NRGBA{}
	}
}

// Set implements the draw.Image interface.
func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	off := y*img.stride + x*img.format.BytesPerPixel()
	p := img.data[off:]
	switch img.format {
	case FormatIndexed8:
		if len(img.palette) == 0 {
			p[0] = color.GrayModel.Convert(c).(color.Gray).Y
			return
		}
		p[0] = uint8(img.palette.Index(c)) //nolint:gosec // palettes hold at most 256 entries
	case FormatRGB888:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		p[0], p[1], p[2] = n.R, n.G, n.B
	case FormatRGB32:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		p[0], p[1], p[2], p[3] = n.B, n.G, n.R, 0xff
	case FormatARGB32:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		p[0], p[1], p[2], p[3] = n.B, n.G, n.R, n.A
	case FormatARGB32Premultiplied:
		r := color.RGBAModel.Convert(c).(color.RGBA)
		p[0], p[1], p[2], p[3] = r.B, r.G, r.R, r.A
	}
}

// Copy returns a deep copy with 4-byte aligned scanlines.
func (img *Image) Copy() *Image {
	stride := alignedStride(img.format.RowBytes(img.width))
	c := &Image{
		data:   make([]byte, stride*img.height),
		width:  img.width,
		height: img.height,
		stride: stride,
		format: img.format,
	}
	if img.palette != nil {
		c.palette = append(color.Palette(nil), img.palette...)
	}
	for y := range img.height {
		copy(c.ScanLine(y), img.ScanLine(y))
	}
	return c
}

// RGBSwapped returns a copy with the red and blue channels exchanged.
// Indexed8 images have their palette entries swapped instead of their pixels.
func (img *Image) RGBSwapped() *Image {
	c := img.Copy()
	switch c.format {
	case FormatIndexed8:
		for i, pc := range c.palette {
			n := color.NRGBAModel.Convert(pc).(color.NRGBA)
			c.palette[i] = color.NRGBA{R: n.B, G: n.G, B: n.R, A: n.A}
		}
	default:
		bpp := c.format.BytesPerPixel()
		for y := range c.height {
			swapRB(c.ScanLine(y), bpp)
		}
	}
	return c
}

// swapRB exchanges bytes 0 and 2 of every bpp-sized pixel in row.
func swapRB(row []byte, bpp int) {
	for x := 0; x+2 < len(row); x += bpp {
		row[x], row[x+2] = row[x+2], row[x]
	}
}
