package kbridge

import (
	"image/png"

	"github.com/gogpu/kbridge/text"
)

// TextPadding is the transparent margin added on every side of the glyph
// buffer so overhangs and diacritics are not clipped while rendering.
const TextPadding = 10

// TextOption configures PutText and MeasureText.
//
// Example:
//
//	src, _ := text.NewFontSourceFromFile("NotoSansSC-Regular.otf")
//	err := kbridge.PutText(m, "你好", image.Pt(10, 40), color.White, 24,
//	    kbridge.WithFont(src))
type TextOption func(*textOptions)

type textOptions struct {
	font    *text.FontSource
	shaper  text.Shaper
	padding int
}

func defaultTextOptions() textOptions {
	return textOptions{padding: TextPadding}
}

// WithFont renders with src instead of the process-wide default font.
func WithFont(src *text.FontSource) TextOption {
	return func(o *textOptions) {
		o.font = src
	}
}

// WithShaper shapes with s instead of the process-wide text shaper.
// Use text.NewGoTextShaper() for Arabic, Devanagari and other complex scripts.
func WithShaper(s text.Shaper) TextOption {
	return func(o *textOptions) {
		o.shaper = s
	}
}

// WithPadding overrides TextPadding. Negative values are treated as 0.
func WithPadding(px int) TextOption {
	return func(o *textOptions) {
		o.padding = max(px, 0)
	}
}

// ReadMode selects the Mat type produced by Read.
type ReadMode int

const (
	// ReadColor decodes to MatBGR8, dropping alpha.
	ReadColor ReadMode = iota
	// ReadGrayscale decodes to MatGray8.
	ReadGrayscale
	// ReadUnchanged keeps grayscale sources as MatGray8 and sources with
	// alpha as MatBGRA8; everything else becomes MatBGR8.
	ReadUnchanged
)

// String returns the name of the mode.
func (m ReadMode) String() string {
	switch m {
	case ReadColor:
		return "color"
	case ReadGrayscale:
		return "grayscale"
	case ReadUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// IOOption configures Read and Write. Options that do not apply to an
// operation are ignored.
type IOOption func(*ioOptions)

type ioOptions struct {
	codec           *Codec
	mode            ReadMode
	autoOrientation bool
	jpegQuality     int
	pngCompression  png.CompressionLevel
}

func defaultIOOptions() ioOptions {
	return ioOptions{
		mode:           ReadColor,
		jpegQuality:    95,
		pngCompression: png.DefaultCompression,
	}
}

// pathCodec returns the configured codec or the process default.
func (o *ioOptions) pathCodec() Codec {
	if o.codec != nil {
		return *o.codec
	}
	return DefaultCodec()
}

// WithPathCodec re-encodes the file path with c before it reaches the file
// system, instead of using DefaultCodec.
func WithPathCodec(c Codec) IOOption {
	return func(o *ioOptions) {
		o.codec = &c
	}
}

// WithReadMode selects the Mat type produced by Read. The default is ReadColor.
func WithReadMode(m ReadMode) IOOption {
	return func(o *ioOptions) {
		o.mode = m
	}
}

// WithAutoOrientation applies the EXIF orientation tag when reading.
func WithAutoOrientation(enabled bool) IOOption {
	return func(o *ioOptions) {
		o.autoOrientation = enabled
	}
}

// WithJPEGQuality sets the JPEG quality for Write, from 1 to 100. The default is 95.
func WithJPEGQuality(q int) IOOption {
	return func(o *ioOptions) {
		o.jpegQuality = min(max(q, 1), 100)
	}
}

// WithPNGCompression sets the PNG compression level for Write.
func WithPNGCompression(level png.CompressionLevel) IOOption {
	return func(o *ioOptions) {
		o.pngCompression = level
	}
}
