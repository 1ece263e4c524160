package kbridge

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Register WebP decoding with image.Decode.
	_ "golang.org/x/image/webp"
)

// Read decodes the image file at path into a Mat.
//
// The path is re-encoded with the configured Codec (WithPathCodec, else
// DefaultCodec) before the file is opened. JPEG, PNG, GIF, TIFF, BMP and
// WebP files are recognized by content. The Mat type follows WithReadMode;
// the default is MatBGR8.
func Read(path string, opts ...IOOption) (*Mat, error) {
	o := defaultIOOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fsPath := string(o.pathCodec().Encode(path))
	img, err := imaging.Open(fsPath, imaging.AutoOrientation(o.autoOrientation))
	if err != nil {
		return nil, fmt.Errorf("kbridge: read %q: %w", path, err)
	}

	t := matTypeFor(img, o.mode)
	Logger().Debug("kbridge: read", "path", path, "codec", o.pathCodec().Name(),
		"mode", o.mode.String(), "type", t.String(), "bounds", img.Bounds().String())
	return MatFromStdImage(img, t)
}

// Decode reads an encoded image from r into a Mat, like Read without a path.
func Decode(r io.Reader, opts ...IOOption) (*Mat, error) {
	o := defaultIOOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(o.autoOrientation))
	if err != nil {
		return nil, fmt.Errorf("kbridge: decode: %w", err)
	}
	return MatFromStdImage(img, matTypeFor(img, o.mode))
}

// matTypeFor picks the Mat type for a decoded image and read mode.
func matTypeFor(img image.Image, mode ReadMode) MatType {
	switch mode {
	case ReadGrayscale:
		return MatGray8
	case ReadUnchanged:
		switch img.(type) {
		case *image.Gray, *image.Gray16:
			return MatGray8
		}
		if o, ok := img.(interface{ Opaque() bool }); ok && !o.Opaque() {
			return MatBGRA8
		}
		return MatBGR8
	default:
		return MatBGR8
	}
}

// Write encodes m to the file at path. The format is chosen from the file
// extension: jpg, jpeg, png, gif, tif, tiff or bmp. Any other extension
// returns an error matching ErrUnsupportedFormat before the file is created.
//
// The path is re-encoded with the configured Codec before the file is created.
func Write(path string, m *Mat, opts ...IOOption) error {
	if m == nil {
		return ErrNilMat
	}
	if m.Empty() {
		return fmt.Errorf("kbridge: write %q: %w", path, ErrEmptyMat)
	}
	o := defaultIOOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("kbridge: write %q: %w", path,
			&UnsupportedFormatError{Op: "Write", Format: extension(path)})
	}

	fsPath := string(o.pathCodec().Encode(path))
	Logger().Debug("kbridge: write", "path", path, "codec", o.pathCodec().Name(),
		"type", m.typ.String(), "rows", m.rows, "cols", m.cols)

	err := imaging.Save(m.ToStdImage(), fsPath,
		imaging.JPEGQuality(o.jpegQuality),
		imaging.PNGCompressionLevel(o.pngCompression))
	if err != nil {
		return fmt.Errorf("kbridge: write %q: %w", path, err)
	}
	return nil
}

// Encode writes m to w in the named format ("jpg", "png", "gif", "tif", "bmp").
func Encode(w io.Writer, m *Mat, format string, opts ...IOOption) error {
	if m == nil {
		return ErrNilMat
	}
	if m.Empty() {
		return fmt.Errorf("kbridge: encode: %w", ErrEmptyMat)
	}
	o := defaultIOOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("kbridge: encode: %w", &UnsupportedFormatError{Op: "Encode", Format: format})
	}
	err = imaging.Encode(w, m.ToStdImage(), f,
		imaging.JPEGQuality(o.jpegQuality),
		imaging.PNGCompressionLevel(o.pngCompression))
	if err != nil {
		return fmt.Errorf("kbridge: encode %s: %w", f, err)
	}
	return nil
}

// extension returns the lower-case file extension without the dot.
func extension(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "(none)"
	}
	return ext
}
