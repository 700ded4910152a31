package software

import (
	"bytes"
	"math"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-scene2d/scene"
)

func newTestSurface() *Surface {
	s := New(64, 32)
	s.SetFont(`13px "whatever"`)
	s.SetFillColor(scene.ColorWhite)
	return s
}

func countLitPixels(s *Surface) int {
	img := s.Image()
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestMeasureTextDeterministic(t *testing.T) {
	s := newTestSurface()

	// Face7x13 is fixed pitch: 7 units per glyph regardless of the
	// requested family or size.
	if got := s.MeasureText("abc"); got != 21 {
		t.Errorf("MeasureText = %v, want 21", got)
	}
	if got := s.MeasureText(""); got != 0 {
		t.Errorf("MeasureText(\"\") = %v, want 0", got)
	}
}

func TestMeasureTextNoFont(t *testing.T) {
	s := New(10, 10)
	if got := s.MeasureText("abc"); got != 0 {
		t.Errorf("MeasureText before SetFont = %v, want 0", got)
	}
}

func TestFillTextDrawsPixels(t *testing.T) {
	s := newTestSurface()
	s.FillText("A", 2, 2)

	if countLitPixels(s) == 0 {
		t.Fatal("no pixels drawn")
	}
}

func TestFillTextEmptyLine(t *testing.T) {
	s := newTestSurface()
	s.FillText("", 2, 2)
	if countLitPixels(s) != 0 {
		t.Error("empty line drew pixels")
	}
}

func TestZeroAlphaDrawsNothing(t *testing.T) {
	s := newTestSurface()
	s.SetGlobalAlpha(0)
	s.FillText("A", 2, 2)
	if countLitPixels(s) != 0 {
		t.Error("alpha 0 still drew pixels")
	}
}

func TestGlobalAlphaClamped(t *testing.T) {
	s := newTestSurface()
	s.SetGlobalAlpha(3)
	if s.GlobalAlpha() != 1 {
		t.Errorf("alpha = %v, want 1", s.GlobalAlpha())
	}
	s.SetGlobalAlpha(-3)
	if s.GlobalAlpha() != 0 {
		t.Errorf("alpha = %v, want 0", s.GlobalAlpha())
	}
}

func TestAlignRightMatchesShiftedLeft(t *testing.T) {
	// Right-aligned at x equals left-aligned at x minus the advance.
	right := newTestSurface()
	right.SetTextAlign(scene.AlignRight)
	right.FillText("ab", 40, 4)

	left := newTestSurface()
	left.FillText("ab", 40-14, 4)

	if !bytes.Equal(right.Image().Pix, left.Image().Pix) {
		t.Error("right-aligned draw differs from shifted left-aligned draw")
	}
}

func TestBaselineAlphabeticMatchesShiftedTop(t *testing.T) {
	ascent := float32(basicfont.Face7x13.Metrics().Ascent) / 64

	alpha := newTestSurface()
	alpha.SetTextBaseline(scene.BaselineAlphabetic)
	alpha.FillText("ab", 4, 20)

	top := newTestSurface()
	top.FillText("ab", 4, 20-ascent)

	if !bytes.Equal(alpha.Image().Pix, top.Image().Pix) {
		t.Error("alphabetic baseline differs from top baseline shifted by ascent")
	}
}

func TestStrokeTextDrawsRing(t *testing.T) {
	s := newTestSurface()
	s.SetStrokeColor(scene.ColorRed)
	s.SetLineWidth(1)
	s.StrokeText("A", 10, 10)

	stroked := countLitPixels(s)
	if stroked == 0 {
		t.Fatal("stroke drew nothing")
	}

	fill := newTestSurface()
	fill.FillText("A", 10, 10)
	if stroked <= countLitPixels(fill) {
		t.Error("stroke ring should cover more pixels than a single fill")
	}
}

func TestWithBackground(t *testing.T) {
	s := New(4, 4, WithBackground(scene.ColorBlack))
	px := s.Image().RGBAAt(0, 0)
	if px.A != 255 || px.R != 0 {
		t.Errorf("background pixel = %+v, want opaque black", px)
	}
}

func TestOpenTypeProviderFallback(t *testing.T) {
	p := NewOpenTypeProvider()

	// Unknown family falls back to the basic face.
	face := p.Resolve(scene.ParsedFont{Size: 12, Families: []string{"nope"}})
	if face != basicfont.Face7x13 {
		t.Error("unknown family did not fall back to basic face")
	}

	// A non-positive or NaN size cannot produce a sized face.
	face = p.Resolve(scene.ParsedFont{Size: float32(math.NaN()), Families: []string{"nope"}})
	if face != basicfont.Face7x13 {
		t.Error("NaN size did not fall back to basic face")
	}
}

func TestOpenTypeProviderRejectsGarbage(t *testing.T) {
	p := NewOpenTypeProvider()
	if err := p.Register("bad", []byte("not a font file")); err == nil {
		t.Error("expected parse error for garbage font data")
	}
}
