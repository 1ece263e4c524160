package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports ligatures, contextual forms, mark positioning and
// right-to-left scripts that BuiltinShaper renders one rune at a time.
//
//	shaper := text.NewGoTextShaper()
//	text.SetShaper(shaper)
//	defer text.SetShaper(nil)
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates a font.Face per Shape call, since
// font.Face is not. HarfbuzzShaper instances are pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
// Glyphs are returned in visual order, left to right.
func (s *GoTextShaper) Shape(text string, face *Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return nil
	}
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	dir := mapDirection(resolveDirection(face.Direction(), text))

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      goTextFace,
		Size:      face.ppem(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns the cached go-text Font for source, parsing the
// source bytes on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	data, err := source.rawData()
	if err != nil {
		return nil, err
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	idx := source.Index()
	if idx >= len(faces) {
		return nil, ErrFontIndexOutOfRange
	}

	s.fontCache[source] = faces[idx].Font
	return faces[idx].Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for source.
// Call it before closing a FontSource the shaper has seen.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// mapDirection converts a resolved Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to ShapedGlyph values.
// go-text offsets grow upward; ShapedGlyph.Y grows downward.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // glyph ids in a single font fit in uint16
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
