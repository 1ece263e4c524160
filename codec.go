package kbridge

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Codec converts between Go strings and byte strings in a fixed code page.
// The zero Codec is UTF-8.
//
// Encode and Decode are total: characters the code page cannot represent
// become the code page's replacement byte, and invalid input bytes become
// U+FFFD. UTF-8 codecs are the exception: they pass bytes through untouched,
// so file names that are not valid UTF-8 survive a round trip.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Predefined codecs.
var (
	// UTF8 passes bytes through unchanged.
	UTF8 = NewCodec("UTF-8", unicode.UTF8)

	// GB18030 is the Chinese national standard code page.
	GB18030 = NewCodec("GB18030", simplifiedchinese.GB18030)

	// Latin1 is ISO 8859-1.
	Latin1 = NewCodec("ISO-8859-1", charmap.ISO8859_1)
)

// NewCodec returns a Codec for enc. A nil enc selects UTF-8.
func NewCodec(name string, enc encoding.Encoding) Codec {
	if enc == nil {
		enc = unicode.UTF8
	}
	return Codec{name: name, enc: enc}
}

// CodecByName resolves an encoding label. WHATWG labels ("gb18030", "gbk",
// "shift_jis", "windows-1252") are tried first, then IANA names and aliases.
func CodecByName(label string) (Codec, error) {
	if enc, err := htmlindex.Get(label); err == nil {
		return NewCodec(label, enc), nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return Codec{}, fmt.Errorf("kbridge: unknown encoding %q: %w", label, err)
	}
	if enc == nil {
		return Codec{}, fmt.Errorf("kbridge: encoding %q: %w", label, ErrUnsupportedFormat)
	}
	return NewCodec(label, enc), nil
}

// LocaleCodec resolves the code page of a POSIX locale string such as
// "zh_CN.GB18030" or "en_US.UTF-8@euro". Locales without a code set,
// including "C" and "POSIX", resolve to UTF-8.
func LocaleCodec(locale string) (Codec, error) {
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	i := strings.IndexByte(locale, '.')
	if i < 0 || i == len(locale)-1 {
		return UTF8, nil
	}
	return CodecByName(locale[i+1:])
}

// EnvCodec resolves the code page of the process locale from LC_ALL,
// LC_CTYPE and LANG, in that order. It falls back to UTF-8 when none is
// set or the code set is unknown.
func EnvCodec() Codec {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		c, err := LocaleCodec(v)
		if err != nil {
			Logger().Warn("kbridge: unknown locale code set, using UTF-8", "env", key, "locale", v, "error", err)
			return UTF8
		}
		return c
	}
	return UTF8
}

// Name returns the label the Codec was created with.
func (c Codec) Name() string {
	if c.enc == nil {
		return "UTF-8"
	}
	return c.name
}

// passthrough reports whether the Codec is UTF-8, the native form of Go
// strings.
func (c Codec) passthrough() bool {
	return c.enc == nil || c.enc == unicode.UTF8
}

func (c Codec) encoding() encoding.Encoding {
	if c.enc == nil {
		return unicode.UTF8
	}
	return c.enc
}

// Encode converts s to the Codec's code page.
func (c Codec) Encode(s string) []byte {
	if c.passthrough() {
		return []byte(s)
	}
	out, err := encoding.ReplaceUnsupported(c.encoding().NewEncoder()).String(s)
	if err != nil {
		Logger().Warn("kbridge: encode failed, keeping UTF-8 bytes", "codec", c.Name(), "error", err)
		return []byte(s)
	}
	return []byte(out)
}

// Decode interprets b in the Codec's code page.
func (c Codec) Decode(b []byte) string {
	if c.passthrough() {
		return string(b)
	}
	out, err := c.encoding().NewDecoder().Bytes(b)
	if err != nil {
		Logger().Warn("kbridge: decode failed, keeping raw bytes", "codec", c.Name(), "error", err)
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(out)
}

// String returns the Codec name.
func (c Codec) String() string { return c.Name() }

var defaultCodec atomic.Pointer[Codec]

func init() {
	c := UTF8
	defaultCodec.Store(&c)
}

// DefaultCodec returns the process-wide codec used for file paths when no
// WithPathCodec option is given. It starts as UTF8.
func DefaultCodec() Codec {
	return *defaultCodec.Load()
}

// SetDefaultCodec replaces the process-wide path codec.
// It is safe for concurrent use.
func SetDefaultCodec(c Codec) {
	defaultCodec.Store(&c)
}
