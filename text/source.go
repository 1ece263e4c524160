package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data  []byte
	index int

	mu     sync.RWMutex
	font   *sfnt.Font
	name   string
	closed bool
}

// NewFontSource creates a FontSource from TTF, OTF, TTC or OTC data.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	coll, err := sfnt.ParseCollection(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	if config.index < 0 || config.index >= coll.NumFonts() {
		return nil, fmt.Errorf("%w: %d of %d", ErrFontIndexOutOfRange, config.index, coll.NumFonts())
	}
	f, err := coll.Font(config.index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font %d: %w", config.index, err)
	}

	s := &FontSource{
		data:  dataCopy,
		index: config.index,
		font:  f,
	}
	s.addr = s
	s.name = extractFontName(f)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSource")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Face{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Index returns the collection index the source was loaded from.
func (s *FontSource) Index() int {
	s.copyCheck()
	return s.index
}

// NumGlyphs returns the number of glyphs in the font, or 0 after Close.
func (s *FontSource) NumGlyphs() int {
	f, err := s.sfnt()
	if err != nil {
		return 0
	}
	return f.NumGlyphs()
}

// Close releases the font data. Faces created from the source stop
// rendering after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.font = nil
	s.closed = true
	return nil
}

// sfnt returns the parsed font, or ErrSourceClosed.
func (s *FontSource) sfnt() (*sfnt.Font, error) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrSourceClosed
	}
	return s.font, nil
}

// rawData returns the font file bytes, or ErrSourceClosed.
func (s *FontSource) rawData() ([]byte, error) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrSourceClosed
	}
	return s.data, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName returns the family name, the full name, or a placeholder.
func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
