package kbridge

import "bytes"

// Mat is a matrix raster buffer in the OpenCV convention: rows of pixels with
// channels stored in blue-green-red(-alpha) order and an optional row stride.
//
// A Mat either owns its data (NewMat, Clone, conversions that copy) or is a
// view over memory owned by someone else (MatFromBytes, some ImageToMat
// results). A view must not outlive the memory it wraps, and writes through
// a view are visible to its owner.
//
// Mat is not safe for concurrent mutation.
type Mat struct {
	data []byte
	rows int
	cols int
	step int
	typ  MatType
}

// NewMat allocates a zeroed Mat with a packed row stride.
// Zero rows or columns produce an empty, valid Mat.
func NewMat(rows, cols int, t MatType) (*Mat, error) {
	return NewMatWithStep(rows, cols, t, t.RowBytes(cols))
}

// NewMatWithStep allocates a zeroed Mat whose rows are step bytes apart.
// Step must be at least t.RowBytes(cols).
func NewMatWithStep(rows, cols int, t MatType, step int) (*Mat, error) {
	if err := checkMatGeometry(rows, cols, t, step); err != nil {
		return nil, err
	}
	return &Mat{
		data: make([]byte, step*rows),
		rows: rows,
		cols: cols,
		step: step,
		typ:  t,
	}, nil
}

// MatFromBytes wraps existing data as a Mat without copying.
// The caller must keep data alive and unmodified in layout for the lifetime
// of the Mat. The last row only needs t.RowBytes(cols) bytes.
func MatFromBytes(data []byte, rows, cols int, t MatType, step int) (*Mat, error) {
	if err := checkMatGeometry(rows, cols, t, step); err != nil {
		return nil, err
	}
	need := requiredBytes(rows, step, t.RowBytes(cols))
	if len(data) < need {
		return nil, ErrDataTooSmall
	}
	return &Mat{
		data: data[:need],
		rows: rows,
		cols: cols,
		step: step,
		typ:  t,
	}, nil
}

func checkMatGeometry(rows, cols int, t MatType, step int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	if !t.IsValid() {
		return &UnsupportedFormatError{Op: "NewMat", Format: t.String()}
	}
	if step < t.RowBytes(cols) {
		return ErrInvalidStep
	}
	return nil
}

// requiredBytes is the minimum slice length holding rows of rowBytes with the
// given stride.
func requiredBytes(rows, step, rowBytes int) int {
	if rows == 0 {
		return 0
	}
	return (rows-1)*step + rowBytes
}

// Rows returns the number of rows (height).
func (m *Mat) Rows() int { return m.rows }

// Cols returns the number of columns (width).
func (m *Mat) Cols() int { return m.cols }

// Step returns the number of bytes between the starts of consecutive rows.
func (m *Mat) Step() int { return m.step }

// Type returns the pixel layout.
func (m *Mat) Type() MatType { return m.typ }

// Channels returns the number of channels per pixel.
func (m *Mat) Channels() int { return m.typ.Channels() }

// Empty reports whether the Mat has no pixels.
func (m *Mat) Empty() bool { return m == nil || m.rows == 0 || m.cols == 0 }

// Data returns the raw backing slice, including row padding.
func (m *Mat) Data() []byte { return m.data }

// Row returns the pixel bytes of row y without padding, or nil if y is out
// of range. The slice aliases the Mat.
func (m *Mat) Row(y int) []byte {
	if y < 0 || y >= m.rows {
		return nil
	}
	start := y * m.step
	return m.data[start : start+m.typ.RowBytes(m.cols)]
}

// Pixel returns the channel bytes of pixel (x, y), or nil if the
// coordinates are outside the Mat. The slice aliases the Mat.
func (m *Mat) Pixel(x, y int) []byte {
	if x < 0 || x >= m.cols || y < 0 || y >= m.rows {
		return nil
	}
	bpp := m.typ.BytesPerPixel()
	off := y*m.step + x*bpp
	return m.data[off : off+bpp : off+bpp]
}

// SetPixel copies px into pixel (x, y). Extra values are ignored and missing
// values leave channels untouched. Out of range coordinates are a no-op.
func (m *Mat) SetPixel(x, y int, px ...byte) {
	copy(m.Pixel(x, y), px)
}

// Fill sets every pixel to px.
func (m *Mat) Fill(px ...byte) {
	bpp := m.typ.BytesPerPixel()
	if len(px) > bpp {
		px = px[:bpp]
	}
	for y := range m.rows {
		row := m.Row(y)
		for x := 0; x < len(row); x += bpp {
			copy(row[x:x+bpp], px)
		}
	}
}

// Clone returns a deep copy with a packed stride.
func (m *Mat) Clone() *Mat {
	c := &Mat{
		data: make([]byte, m.typ.RowBytes(m.cols)*m.rows),
		rows: m.rows,
		cols: m.cols,
		step: m.typ.RowBytes(m.cols),
		typ:  m.typ,
	}
	for y := range m.rows {
		copy(c.Row(y), m.Row(y))
	}
	return c
}

// Equal reports whether m and other have the same type, size and pixels.
// Row padding is not compared.
func (m *Mat) Equal(other *Mat) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.typ != other.typ || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for y := range m.rows {
		if !bytes.Equal(m.Row(y), other.Row(y)) {
			return false
		}
	}
	return true
}
