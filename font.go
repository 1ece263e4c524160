package kbridge

import (
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/kbridge/text"
)

// BuiltinFontSize is the initial process-wide font size in pixels per em.
const BuiltinFontSize = 16

var (
	defaultFont     atomic.Pointer[text.FontSource]
	defaultFontSize atomic.Uint64 // math.Float64bits

	goRegularOnce sync.Once
	goRegular     *text.FontSource
)

func init() {
	defaultFontSize.Store(math.Float64bits(BuiltinFontSize))
}

// builtinFont returns the Go Regular font, parsing it on first use.
func builtinFont() *text.FontSource {
	goRegularOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			// The embedded font is known to parse.
			panic("kbridge: parse builtin font: " + err.Error())
		}
		goRegular = src
	})
	return goRegular
}

// DefaultFont returns the process-wide font used by PutText when no WithFont
// option is given. It is Go Regular until SetDefaultFont is called.
func DefaultFont() *text.FontSource {
	if src := defaultFont.Load(); src != nil {
		return src
	}
	return builtinFont()
}

// SetDefaultFont replaces the process-wide font. Pass nil to restore Go Regular.
// It is safe for concurrent use.
func SetDefaultFont(src *text.FontSource) {
	defaultFont.Store(src)
}

// DefaultFontSize returns the process-wide font size used when PutText is
// called with a size of zero or less.
func DefaultFontSize() float64 {
	return math.Float64frombits(defaultFontSize.Load())
}

// SetDefaultFontSize replaces the process-wide font size. Values of zero or
// less restore BuiltinFontSize.
func SetDefaultFontSize(size float64) {
	if size <= 0 {
		size = BuiltinFontSize
	}
	defaultFontSize.Store(math.Float64bits(size))
}
