package scene

// Align is the horizontal anchor of each text line relative to the draw x.
type Align string

// Horizontal alignment values.
const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// Baseline selects the vertical anchor of a text line relative to the draw y.
type Baseline string

// Baseline values, matching the usual 2D canvas vocabulary.
const (
	BaselineTop         Baseline = "top"
	BaselineHanging     Baseline = "hanging"
	BaselineMiddle      Baseline = "middle"
	BaselineAlphabetic  Baseline = "alphabetic"
	BaselineIdeographic Baseline = "ideographic"
	BaselineBottom      Baseline = "bottom"
)

// Surface is the abstract 2D drawing target. Its font, color, alignment
// and alpha fields are shared mutable state global to the surface, so
// callers must fully reconfigure the fields they depend on immediately
// before each draw or measure call. Implementations can be swapped
// (OpenGL draw lists, CPU images, vector output, mocks for testing).
type Surface interface {
	// SetFont sets the font from a serialized font string, e.g.
	// `bold 20px "Arial","sans-serif"`. Malformed strings are the
	// surface's problem; it may fall back to a default face.
	SetFont(font string)

	// SetFillColor sets the color used by FillText.
	SetFillColor(c Color)

	// SetStrokeColor sets the color used by StrokeText.
	SetStrokeColor(c Color)

	// SetLineWidth sets the stroke thickness in pixels.
	SetLineWidth(w float32)

	// SetTextAlign sets the horizontal anchor for subsequent text calls.
	SetTextAlign(a Align)

	// SetTextBaseline sets the vertical anchor for subsequent text calls.
	SetTextBaseline(b Baseline)

	// GlobalAlpha returns the current global alpha (0.0-1.0).
	GlobalAlpha() float32

	// SetGlobalAlpha sets the global alpha applied to all draws.
	SetGlobalAlpha(a float32)

	// MeasureText returns the advance width of a single line under the
	// currently configured font.
	MeasureText(line string) float32

	// FillText draws a single line filled with the fill color.
	FillText(line string, x, y float32)

	// StrokeText draws a single line outlined with the stroke color.
	StrokeText(line string, x, y float32)
}
