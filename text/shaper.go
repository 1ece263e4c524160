package text

import (
	"sync"

	"golang.org/x/image/font/sfnt"
)

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: cmap lookup, advances and pair kerning from golang.org/x/image
//   - GoTextShaper: HarfBuzz shaping from go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size().
	Shape(text string, face *Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the process-wide shaper used by faces without WithShaper.
// Pass nil to reset to the default BuiltinShaper.
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current process-wide shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// BuiltinShaper maps each rune to one glyph and applies pair kerning.
// It does not reorder right-to-left text or form ligatures; use
// GoTextShaper for complex scripts.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (BuiltinShaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	sf, err := face.source.sfnt()
	if err != nil {
		return nil
	}

	var (
		buf    sfnt.Buffer
		ppem   = face.ppem()
		h      = face.hinting()
		x      float64
		prev   sfnt.GlyphIndex
		result = make([]ShapedGlyph, 0, len(text))
	)

	for i, r := range text {
		gid, err := sf.GlyphIndex(&buf, r)
		if err != nil {
			gid = 0
		}
		if n := len(result); n > 0 {
			if k, err := sf.Kern(&buf, prev, gid, ppem, h); err == nil && k != 0 {
				kern := fixedToFloat(k)
				result[n-1].XAdvance += kern
				x += kern
			}
		}
		var adv float64
		if a, err := sf.GlyphAdvance(&buf, gid, ppem, h); err == nil {
			adv = fixedToFloat(a)
		}
		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  i,
			X:        x,
			XAdvance: adv,
		})
		x += adv
		prev = gid
	}

	return result
}
