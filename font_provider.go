package scene

// FontProvider resolves parsed font strings to concrete fonts. It
// abstracts font loading and caching so different implementations can
// be injected (atlas fonts for the GL backend, mock fonts for tests).
//
// The core package does not depend on any concrete font implementation;
// surfaces that need one take a FontProvider at construction.
type FontProvider interface {
	// Resolve returns the best font for the parsed descriptor, walking
	// the family stack in fallback order. It never returns nil: when
	// nothing matches, implementations return their default face, which
	// mirrors how 2D surfaces fall back on a system font rather than
	// failing the draw.
	Resolve(pf ParsedFont) Font
}

// Font is a single font that can measure and emit glyph geometry.
//
// Implementations should be GPU-oriented, using pre-generated texture
// atlases rather than rasterizing at render time.
type Font interface {
	// TextureID returns the texture ID of the font atlas. The draw list
	// batches by this ID.
	TextureID() uint32

	// MeasureText returns the pixel dimensions of text rendered at the
	// given nominal size.
	MeasureText(text string, sizePx float32) Vec2

	// Ascent returns the baseline-to-top distance at the given size.
	Ascent(sizePx float32) float32

	// GlyphQuads generates render quads for text with its top-left
	// corner at (x, y). The returned slice is only valid until the next
	// call and must not be stored.
	GlyphQuads(text string, x, y, sizePx float32) []GlyphQuad
}

// GlyphQuad is a single character's rendering quad.
type GlyphQuad struct {
	// Screen coordinates (top-left and bottom-right)
	X0, Y0 float32
	X1, Y1 float32

	// Texture coordinates (top-left and bottom-right)
	U0, V0 float32
	U1, V1 float32
}
