package scene_test

import (
	"testing"

	scene "github.com/go-scene2d/scene"
)

// gridFont is a fixed-pitch fake: 10 units per byte at any size, one
// quad per byte.
type gridFont struct {
	tex      uint32
	resolved []scene.ParsedFont
}

func (f *gridFont) TextureID() uint32 { return f.tex }

func (f *gridFont) MeasureText(text string, sizePx float32) scene.Vec2 {
	return scene.Vec2{X: float32(len(text)) * 10, Y: sizePx}
}

func (f *gridFont) Ascent(sizePx float32) float32 { return sizePx * 0.8 }

func (f *gridFont) GlyphQuads(text string, x, y, sizePx float32) []scene.GlyphQuad {
	quads := make([]scene.GlyphQuad, 0, len(text))
	for i := range text {
		gx := x + float32(i)*10
		quads = append(quads, scene.GlyphQuad{X0: gx, Y0: y, X1: gx + 10, Y1: y + sizePx})
	}
	return quads
}

type gridProvider struct {
	font *gridFont
}

func (p *gridProvider) Resolve(pf scene.ParsedFont) scene.Font {
	p.font.resolved = append(p.font.resolved, pf)
	return p.font
}

func newGridSurface() (*scene.ListSurface, *scene.DrawList, *gridFont) {
	dl := scene.AcquireDrawList()
	f := &gridFont{tex: 7}
	ls := scene.NewListSurface(dl, &gridProvider{font: f})
	return ls, dl, f
}

func TestListSurfaceFillText(t *testing.T) {
	ls, dl, _ := newGridSurface()
	defer scene.ReleaseDrawList(dl)

	ls.SetFont(`20px "Arial"`)
	ls.SetFillColor(scene.ColorWhite)
	ls.FillText("ab", 5, 9)
	dl.Finalize()

	if len(dl.VtxBuffer) != 8 {
		t.Fatalf("vertices = %d, want 2 glyphs x 4", len(dl.VtxBuffer))
	}
	if dl.VtxBuffer[0].Pos != [2]float32{5, 9} {
		t.Errorf("first vertex at %v, want (5, 9)", dl.VtxBuffer[0].Pos)
	}
	if dl.CmdBuffer[0].TextureID != 7 {
		t.Errorf("texture = %d, want atlas texture bound", dl.CmdBuffer[0].TextureID)
	}
}

func TestListSurfaceSetFontResolves(t *testing.T) {
	ls, dl, f := newGridSurface()
	defer scene.ReleaseDrawList(dl)

	ls.SetFont(`bold 14px "Courier New","monospace"`)

	if len(f.resolved) != 1 {
		t.Fatalf("resolved %d fonts, want 1", len(f.resolved))
	}
	pf := f.resolved[0]
	if !pf.Bold || pf.Size != 14 || len(pf.Families) != 2 {
		t.Errorf("resolved %+v", pf)
	}

	if w := ls.MeasureText("abc"); w != 30 {
		t.Errorf("MeasureText = %v, want 30", w)
	}
}

func TestListSurfaceAlignment(t *testing.T) {
	ls, dl, _ := newGridSurface()
	defer scene.ReleaseDrawList(dl)
	ls.SetFont(`10px "Arial"`)
	ls.SetFillColor(scene.ColorWhite)

	// "ab" is 20 units wide.
	ls.SetTextAlign(scene.AlignRight)
	ls.FillText("ab", 100, 0)
	ls.SetTextAlign(scene.AlignCenter)
	ls.FillText("ab", 100, 0)
	dl.Finalize()

	if got := dl.VtxBuffer[0].Pos[0]; got != 80 {
		t.Errorf("right-aligned x = %v, want 80", got)
	}
	if got := dl.VtxBuffer[8].Pos[0]; got != 90 {
		t.Errorf("center-aligned x = %v, want 90", got)
	}
}

func TestListSurfaceBaseline(t *testing.T) {
	ls, dl, _ := newGridSurface()
	defer scene.ReleaseDrawList(dl)
	ls.SetFont(`10px "Arial"`)
	ls.SetFillColor(scene.ColorWhite)

	cases := []struct {
		baseline scene.Baseline
		wantY    float32
	}{
		{scene.BaselineTop, 100},
		{scene.BaselineMiddle, 95},
		{scene.BaselineAlphabetic, 92}, // ascent 8 at size 10
		{scene.BaselineBottom, 90},
	}
	for i, tc := range cases {
		ls.SetTextBaseline(tc.baseline)
		ls.FillText("a", 0, 100)
		if got := dl.VtxBuffer[i*4].Pos[1]; got != tc.wantY {
			t.Errorf("%s: y = %v, want %v", tc.baseline, got, tc.wantY)
		}
	}
}

func TestListSurfaceAlphaBakedIntoColor(t *testing.T) {
	ls, dl, _ := newGridSurface()
	defer scene.ReleaseDrawList(dl)
	ls.SetFont(`10px "Arial"`)
	ls.SetFillColor(scene.ColorWhite)
	ls.SetGlobalAlpha(0.5)

	ls.FillText("a", 0, 0)
	dl.Finalize()

	want := uint32(scene.ColorWhite.WithAlpha(0.5))
	if got := dl.VtxBuffer[0].Color; got != want {
		t.Errorf("vertex color = %#x, want %#x", got, want)
	}
}

func TestListSurfaceStrokeRing(t *testing.T) {
	ls, dl, _ := newGridSurface()
	defer scene.ReleaseDrawList(dl)
	ls.SetFont(`10px "Arial"`)
	ls.SetStrokeColor(scene.ColorBlack)
	ls.SetLineWidth(2)

	ls.StrokeText("a", 50, 50)
	dl.Finalize()

	// 8 offset copies of a single glyph.
	if len(dl.VtxBuffer) != 32 {
		t.Errorf("vertices = %d, want 8 copies x 4", len(dl.VtxBuffer))
	}
	for _, v := range dl.VtxBuffer {
		if v.Pos == [2]float32{50, 50} {
			t.Error("stroke copy landed on the fill position; ring offsets missing")
		}
	}
}

func TestListSurfaceEmptyLineNoQuads(t *testing.T) {
	ls, dl, _ := newGridSurface()
	defer scene.ReleaseDrawList(dl)
	ls.SetFont(`10px "Arial"`)
	ls.SetFillColor(scene.ColorWhite)

	ls.FillText("", 0, 0)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("vertices = %d, want none for an empty line", len(dl.VtxBuffer))
	}
}
