package scene_test

import (
	"testing"

	scene "github.com/go-scene2d/scene"
)

func quad(x, y float32) scene.GlyphQuad {
	return scene.GlyphQuad{X0: x, Y0: y, X1: x + 8, Y1: y + 8, U1: 1, V1: 1}
}

func TestDrawListGlyphQuads(t *testing.T) {
	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)

	dl.SetTexture(1)
	dl.AddGlyphQuads([]scene.GlyphQuad{quad(0, 0), quad(8, 0)}, scene.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 8 {
		t.Errorf("vertices = %d, want 4 per quad", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 12 {
		t.Errorf("indices = %d, want 6 per quad", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("commands = %d, want 1", len(dl.CmdBuffer))
	}
	if cmd := dl.CmdBuffer[0]; cmd.ElemCount != 12 || cmd.TextureID != 1 {
		t.Errorf("cmd = %+v, want 12 elements on texture 1", cmd)
	}
}

func TestDrawListBatchesByTexture(t *testing.T) {
	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)

	dl.SetTexture(1)
	dl.AddGlyphQuads([]scene.GlyphQuad{quad(0, 0)}, scene.ColorWhite)
	dl.AddGlyphQuads([]scene.GlyphQuad{quad(8, 0)}, scene.ColorWhite)
	dl.SetTexture(2)
	dl.AddGlyphQuads([]scene.GlyphQuad{quad(16, 0)}, scene.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want one per texture", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 12 || dl.CmdBuffer[0].TextureID != 1 {
		t.Errorf("cmd 0 = %+v", dl.CmdBuffer[0])
	}
	if dl.CmdBuffer[1].ElemCount != 6 || dl.CmdBuffer[1].TextureID != 2 {
		t.Errorf("cmd 1 = %+v", dl.CmdBuffer[1])
	}

	// Same texture again: no new command.
	dl.SetTexture(2)
	dl.AddGlyphQuads([]scene.GlyphQuad{quad(24, 0)}, scene.ColorWhite)
	dl.Finalize()
	if len(dl.CmdBuffer) != 2 {
		t.Errorf("commands = %d after same-texture append, want 2", len(dl.CmdBuffer))
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)

	dl.SetTexture(1)
	dl.AddGlyphQuads([]scene.GlyphQuad{quad(0, 0)}, scene.ColorTransparent)
	dl.AddRect(0, 0, 10, 10, scene.ColorWhite.WithAlpha(0))
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("vertices = %d, want transparent draws skipped", len(dl.VtxBuffer))
	}
}

func TestDrawListClipStack(t *testing.T) {
	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)

	dl.PushClipRect(10, 10, 100, 100)
	dl.AddRect(0, 0, 50, 50, scene.ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 50, 50, scene.ColorWhite)
	dl.Finalize()

	var clipped *scene.DrawCmd
	for i := range dl.CmdBuffer {
		if dl.CmdBuffer[i].ClipRect == [4]float32{10, 10, 100, 100} {
			clipped = &dl.CmdBuffer[i]
		}
	}
	if clipped == nil {
		t.Fatal("no command carries the pushed clip rect")
	}
	if clipped.ElemCount != 6 {
		t.Errorf("clipped cmd elements = %d, want 6", clipped.ElemCount)
	}
}

func TestDrawListClearRetainsNothing(t *testing.T) {
	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)

	dl.SetTexture(3)
	dl.AddGlyphQuads([]scene.GlyphQuad{quad(0, 0)}, scene.ColorWhite)
	dl.Clear()

	if len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("buffers not empty after Clear: %d/%d/%d",
			len(dl.VtxBuffer), len(dl.IdxBuffer), len(dl.CmdBuffer))
	}
}
