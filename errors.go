package kbridge

import (
	"errors"
	"fmt"
)

// Sentinel errors for kbridge.
var (
	// ErrUnsupportedFormat is matched by every *UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("kbridge: unsupported format")

	// ErrInvalidDimensions is returned when a width, height, row or column
	// count is negative.
	ErrInvalidDimensions = errors.New("kbridge: invalid dimensions")

	// ErrInvalidStep is returned when a row stride is smaller than one row of pixels.
	ErrInvalidStep = errors.New("kbridge: step too small for width")

	// ErrDataTooSmall is returned when a backing slice is shorter than the
	// buffer it should hold.
	ErrDataTooSmall = errors.New("kbridge: data buffer too small")

	// ErrNilMat is returned when a nil *Mat is passed.
	ErrNilMat = errors.New("kbridge: nil mat")

	// ErrNilImage is returned when a nil *Image is passed.
	ErrNilImage = errors.New("kbridge: nil image")

	// ErrEmptyMat is returned when an operation needs at least one pixel.
	ErrEmptyMat = errors.New("kbridge: empty mat")
)

// UnsupportedFormatError reports a pixel layout an operation cannot handle.
// It matches ErrUnsupportedFormat with errors.Is.
type UnsupportedFormatError struct {
	// Op is the operation that rejected the layout.
	Op string

	// Format is the name of the rejected layout.
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("kbridge: %s: unsupported format %s", e.Op, e.Format)
}

// Unwrap returns ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}
