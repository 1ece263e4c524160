package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// testSource returns a Go Regular FontSource closed at the end of the test.
func testSource(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to create font source: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source
}

func TestNewFontSource(t *testing.T) {
	source := testSource(t)

	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if got := source.Index(); got != 0 {
		t.Errorf("Index() = %d, want 0", got)
	}
	if source.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
}

func TestNewFontSource_Errors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) should fail")
	}
	for _, idx := range []int{-1, 1} {
		if _, err := NewFontSource(goregular.TTF, WithCollectionIndex(idx)); !errors.Is(err, ErrFontIndexOutOfRange) {
			t.Errorf("WithCollectionIndex(%d) error = %v, want ErrFontIndexOutOfRange", idx, err)
		}
	}
}

func TestNewFontSource_CopiesData(t *testing.T) {
	data := append([]byte(nil), gomono.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatal(err)
	}
	defer source.Close()

	for i := range data {
		data[i] = 0
	}
	face := source.Face(16)
	if face.Advance("abc") == 0 {
		t.Error("source stopped working after caller reused its buffer")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() error = %v", err)
	}
	defer source.Close()
	if source.Name() != "Go" {
		t.Errorf("Name() = %q", source.Name())
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestFontSource_Close(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := source.Face(16)
	if err := source.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if source.NumGlyphs() != 0 {
		t.Error("NumGlyphs() after Close should be 0")
	}
	if face.Advance("abc") != 0 {
		t.Error("Advance() after Close should be 0")
	}
	if face.Metrics() != (Metrics{}) {
		t.Error("Metrics() after Close should be zero")
	}
	if _, err := source.rawData(); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("rawData() after Close error = %v", err)
	}
}

func TestFontSource_NilFacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Face() on a nil source should panic")
		}
	}()
	var s *FontSource
	_ = s.Face(12)
}

func TestFontSource_CopyPanics(t *testing.T) {
	source := testSource(t)
	defer func() {
		if recover() == nil {
			t.Error("using a copied FontSource should panic")
		}
	}()
	copied := &FontSource{addr: source.addr, name: source.name}
	_ = copied.Name()
}

func TestFontSource_ConcurrentFaces(t *testing.T) {
	source := testSource(t)
	want := source.Face(20).Advance("concurrent")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := source.Face(20).Advance("concurrent"); got != want {
				t.Errorf("Advance() = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}
