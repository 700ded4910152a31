// Package scene is a small 2D scene-graph text renderer. It owns font
// descriptors, text styles and multi-line layout, and issues fill and
// stroke draw calls against an abstract Surface; glyph rasterization,
// shaping and font parsing stay behind the Surface boundary.
//
// The core type is [Text]: a stateless renderer that, per call,
// reconfigures the surface from its [FontDescriptor] and [TextStyle],
// splits the input into lines, trims trailing whitespace, and fills
// (or strokes then fills) each line while advancing the cursor by
// size × lineHeight. [Text.Measure] returns the aggregate block
// metrics and caches them on the component's [Node] anchor as its
// bounding box.
//
//	t := scene.NewText("Arial", scene.Px(20),
//	    scene.WithFill(scene.ColorWhite))
//	size := t.Measure(surface, "Hi\nThere")
//	t.Draw(surface, "Hi\nThere", 16, 16)
//
// Surfaces are pluggable: [ListSurface] records glyph quads into a
// [DrawList] for the OpenGL backend, backend/software draws onto CPU
// images, and backend/vector produces PDF output. Tests typically use
// a recording mock.
package scene
