package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontIndexOutOfRange is returned when a collection index does not
	// name a font in the file.
	ErrFontIndexOutOfRange = errors.New("text: font index out of range")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source closed")
)
