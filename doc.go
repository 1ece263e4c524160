// Package kbridge bridges OpenCV-style Mat rasters and Qt-style Image rasters,
// and draws Unicode text onto a Mat.
//
// # Overview
//
// A Mat stores pixels in BGR byte order with a caller-visible row stride.
// An Image stores pixels in one of the ImageFormat layouts, with 4-byte
// aligned scanlines, and implements draw.Image so it works with the
// standard library and image processing packages.
//
//	m, _ := kbridge.NewMat(100, 100, kbridge.MatBGR8)
//	err := kbridge.PutText(m, "你好, world", image.Pt(10, 50), color.White, 20)
//	img, _ := kbridge.MatToImage(m)
//
// # Conversions
//
// MatToImage always copies. ImageToMat returns a view over the image memory
// for the 32-bit formats and for grayscale Indexed8 images, and a copy
// otherwise. Layouts that cannot be converted return an
// *UnsupportedFormatError, which matches ErrUnsupportedFormat.
//
// # Text
//
// PutText shapes text with the text package, renders it into a padded
// transparent buffer and blends the covered pixels onto the Mat. Pixels
// outside the Mat are skipped. The default font is Go Regular; use WithFont
// or SetDefaultFont for CJK and other scripts it does not cover.
//
// # Files and code pages
//
// Read and Write load and save Mats through the imaging package. File names
// are passed through a Codec so that paths in legacy code pages such as
// GB18030 can be produced from Go strings. EnvCodec picks the code page of
// the process locale.
//
// # Logging
//
// kbridge is silent by default. Call SetLogger with a *slog.Logger to see
// conversion and I/O diagnostics.
package kbridge
