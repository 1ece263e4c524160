package text

import (
	"math"
	"testing"
)

func TestFace_Accessors(t *testing.T) {
	source := testSource(t)
	face := source.Face(18, WithDirection(DirectionRTL), WithLanguage("ar"))

	if face.Source() != source {
		t.Error("Source() does not return the creating source")
	}
	if face.Size() != 18 {
		t.Errorf("Size() = %v, want 18", face.Size())
	}
	if face.Direction() != DirectionRTL {
		t.Errorf("Direction() = %v, want RTL", face.Direction())
	}
	if face.Language() != "ar" {
		t.Errorf("Language() = %q, want ar", face.Language())
	}

	def := source.Face(18)
	if def.Direction() != DirectionAuto || def.Language() != "en" {
		t.Errorf("defaults = %v %q, want Auto en", def.Direction(), def.Language())
	}
}

func TestFace_Metrics(t *testing.T) {
	face := testSource(t).Face(20)
	m := face.Metrics()

	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Fatalf("Ascent=%v Descent=%v, want both positive", m.Ascent, m.Descent)
	}
	if m.LineHeight() < m.Ascent {
		t.Errorf("LineHeight() = %v is less than Ascent %v", m.LineHeight(), m.Ascent)
	}

	double := testSource(t).Face(40).Metrics()
	if math.Abs(double.Ascent-2*m.Ascent) > 1 {
		t.Errorf("Ascent at 40px = %v, want about %v", double.Ascent, 2*m.Ascent)
	}
}

func TestFace_HintingRoundsAdvances(t *testing.T) {
	source := testSource(t)
	hinted := source.Face(13, WithHinting(HintingFull)).Advance("a")
	if hinted != math.Round(hinted) {
		t.Errorf("hinted advance = %v, want whole pixels", hinted)
	}
}

func TestFace_HasGlyph(t *testing.T) {
	face := testSource(t).Face(16)
	if !face.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
	if face.HasGlyph('中') {
		t.Error("Go Regular has no CJK glyphs")
	}
}

func TestFace_ShaperSelection(t *testing.T) {
	source := testSource(t)
	if _, ok := source.Face(16).Shaper().(*BuiltinShaper); !ok {
		t.Errorf("default Shaper() = %T, want *BuiltinShaper", source.Face(16).Shaper())
	}

	gt := NewGoTextShaper()
	if source.Face(16, WithShaper(gt)).Shaper() != gt {
		t.Error("WithShaper was not honored")
	}
}

func TestFixedConversion(t *testing.T) {
	for _, v := range []float64{0, 1, 12.5, 16.25, -3.75} {
		if got := fixedToFloat(floatToFixed(v)); got != v {
			t.Errorf("fixedToFloat(floatToFixed(%v)) = %v", v, got)
		}
	}
}
