package kbridge

// MatType is the pixel layout of a Mat.
//
// Mat channels are stored in blue-green-red order, the convention used by
// OpenCV-style matrix buffers.
type MatType uint8

const (
	// MatGray8 is 8-bit single channel grayscale (1 byte per pixel).
	MatGray8 MatType = iota

	// MatBGR8 is 8-bit three channel color stored as B, G, R (3 bytes per pixel).
	MatBGR8

	// MatBGRA8 is 8-bit four channel color stored as B, G, R, A (4 bytes per pixel).
	MatBGRA8

	// matTypeCount is the number of mat types (for internal use).
	matTypeCount
)

// Channels returns the number of channels per pixel, or 0 for an unknown type.
func (t MatType) Channels() int {
	switch t {
	case MatGray8:
		return 1
	case MatBGR8:
		return 3
	case MatBGRA8:
		return 4
	default:
		return 0
	}
}

// BytesPerPixel returns the number of bytes per pixel. All mat types use
// one byte per channel.
func (t MatType) BytesPerPixel() int {
	return t.Channels()
}

// IsValid returns true if t is a known mat type.
func (t MatType) IsValid() bool {
	return t < matTypeCount
}

// RowBytes returns the minimum number of bytes for a row of the given width.
func (t MatType) RowBytes(cols int) int {
	return cols * t.BytesPerPixel()
}

// String returns the OpenCV-style name of the type.
func (t MatType) String() string {
	switch t {
	case MatGray8:
		return "8UC1"
	case MatBGR8:
		return "8UC3"
	case MatBGRA8:
		return "8UC4"
	default:
		return "Unknown"
	}
}

// ImageFormat is the pixel layout of an Image.
//
// 32-bit formats store one little-endian 0xAARRGGBB word per pixel, so the
// bytes in memory are B, G, R, A.
type ImageFormat uint8

const (
	// FormatInvalid is the zero format; no Image is created with it.
	FormatInvalid ImageFormat = iota

	// FormatIndexed8 stores one palette index per pixel.
	FormatIndexed8

	// FormatRGB888 stores R, G, B bytes per pixel.
	FormatRGB888

	// FormatRGB32 stores a 0xffRRGGBB word per pixel. The alpha byte is ignored
	// on read and written as 0xff.
	FormatRGB32

	// FormatARGB32 stores a 0xAARRGGBB word per pixel with straight alpha.
	FormatARGB32

	// FormatARGB32Premultiplied stores a 0xAARRGGBB word per pixel with the
	// color channels premultiplied by alpha.
	FormatARGB32Premultiplied

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo contains metadata about an image format.
type formatInfo struct {
	bytesPerPixel   int
	hasAlpha        bool
	isPremultiplied bool
	name            string
}

var formatInfoTable = [formatCount]formatInfo{
	FormatInvalid:             {name: "Invalid"},
	FormatIndexed8:            {bytesPerPixel: 1, name: "Indexed8"},
	FormatRGB888:              {bytesPerPixel: 3, name: "RGB888"},
	FormatRGB32:               {bytesPerPixel: 4, name: "RGB32"},
	FormatARGB32:              {bytesPerPixel: 4, hasAlpha: true, name: "ARGB32"},
	FormatARGB32Premultiplied: {bytesPerPixel: 4, hasAlpha: true, isPremultiplied: true, name: "ARGB32Premultiplied"},
}

func (f ImageFormat) info() formatInfo {
	if f >= formatCount {
		return formatInfo{name: "Unknown"}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel, or 0 for an invalid format.
func (f ImageFormat) BytesPerPixel() int {
	return f.info().bytesPerPixel
}

// HasAlpha returns true if the format carries an alpha channel.
func (f ImageFormat) HasAlpha() bool {
	return f.info().hasAlpha
}

// IsPremultiplied returns true if color channels are premultiplied by alpha.
func (f ImageFormat) IsPremultiplied() bool {
	return f.info().isPremultiplied
}

// IsValid returns true if f is a known, non-zero format.
func (f ImageFormat) IsValid() bool {
	return f > FormatInvalid && f < formatCount
}

// RowBytes returns the minimum number of bytes for a row of the given width.
func (f ImageFormat) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f ImageFormat) String() string {
	return f.info().name
}
