package scene_test

import (
	"testing"

	scene "github.com/go-scene2d/scene"
)

func TestNodeIDsUnique(t *testing.T) {
	seen := map[scene.NodeID]bool{}
	for i := 0; i < 100; i++ {
		n := scene.NewNode()
		if seen[n.ID()] {
			t.Fatalf("duplicate node id %d", n.ID())
		}
		seen[n.ID()] = true
	}
}

func TestNodeIDStableAcrossMutation(t *testing.T) {
	n := scene.NewNode()
	id := n.ID()
	n.SetPosition(scene.Vec2{X: 5, Y: 5})
	n.SetOpacity(0.3)
	if n.ID() != id {
		t.Errorf("id changed from %d to %d", id, n.ID())
	}
}

func TestNodeOpacityClamped(t *testing.T) {
	n := scene.NewNode()
	if n.Opacity() != 1 {
		t.Errorf("default opacity = %v, want 1", n.Opacity())
	}
	n.SetOpacity(2)
	if n.Opacity() != 1 {
		t.Errorf("opacity = %v, want clamped to 1", n.Opacity())
	}
	n.SetOpacity(-0.5)
	if n.Opacity() != 0 {
		t.Errorf("opacity = %v, want clamped to 0", n.Opacity())
	}
}

func TestNodeEffectiveOpacityChain(t *testing.T) {
	grand := scene.NewNode()
	grand.SetOpacity(0.5)
	parent := scene.NewNode()
	parent.SetOpacity(0.5)
	parent.SetParent(&grand)
	child := scene.NewNode()
	child.SetOpacity(0.5)
	child.SetParent(&parent)

	if diff := child.EffectiveOpacity() - 0.125; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("effective opacity = %v, want 0.125", child.EffectiveOpacity())
	}
}

func TestNodeBounds(t *testing.T) {
	m := newMockSurface()
	txt := scene.NewText("Arial", scene.Px(10))
	txt.Draw(m, "abc", 7, 9)
	txt.Measure(m, "abc")

	if got, want := txt.Bounds(), (scene.Rect{X: 7, Y: 9, W: 30, H: 10}); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestRectContainsIntersects(t *testing.T) {
	r := scene.Rect{X: 0, Y: 0, W: 10, H: 10}
	if !r.Contains(scene.Vec2{X: 5, Y: 5}) {
		t.Error("center not contained")
	}
	if r.Contains(scene.Vec2{X: 15, Y: 5}) {
		t.Error("outside point contained")
	}
	other := scene.Rect{X: 8, Y: 8, W: 12, H: 12}
	if !r.Intersects(other) {
		t.Error("overlapping rects report no intersection")
	}
	far := scene.Rect{X: 30, Y: 30, W: 10, H: 10}
	if r.Intersects(far) {
		t.Error("disjoint rects report intersection")
	}
}

func TestSceneAddParentsNodes(t *testing.T) {
	sc := scene.NewScene(scene.WithSceneOpacity(0.5))
	label := scene.NewLabel("x", scene.Vec2{}, "Arial", scene.Px(10))
	sc.Add(label)

	if sc.Len() != 1 {
		t.Fatalf("len = %d, want 1", sc.Len())
	}
	if diff := label.EffectiveOpacity() - 0.5; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("label effective opacity = %v, want scene opacity applied", label.EffectiveOpacity())
	}
}
