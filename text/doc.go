// Package text loads OpenType fonts, shapes strings into positioned glyphs
// and rasterizes them with antialiasing.
//
// The pipeline separates three concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF/TTC data)
//   - Face: lightweight font instance at a specific size
//   - Shaper: turns a string into glyphs (BuiltinShaper or GoTextShaper)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("NotoSansSC-Regular.otf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(24)
//	w, h := text.Measure("你好, world", face)
//	dst := image.NewNRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))
//	text.Draw(dst, "你好, world", face, 0, face.Metrics().Ascent, color.Black)
//
// Outlines come from golang.org/x/image/font/sfnt and are rasterized with
// golang.org/x/image/vector. Complex scripts need GoTextShaper, which runs
// HarfBuzz shaping from github.com/go-text/typesetting.
package text
