package scene

// TextStyle is the mutable style applied to the surface before each
// text draw. Fill and stroke colors are independent; both may be used
// in the same draw. LineHeight is a multiplier against the font's
// nominal size, not an absolute pixel value.
type TextStyle struct {
	FillColor   Color
	StrokeColor Color
	LineWidth   float32
	Align       Align
	Baseline    Baseline
	LineHeight  float32
}

// DefaultTextStyle returns the default style: white fill, 1px stroke,
// left-aligned, top baseline, single line spacing.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FillColor:   ColorWhite,
		StrokeColor: ColorWhite,
		LineWidth:   1,
		Align:       AlignLeft,
		Baseline:    BaselineTop,
		LineHeight:  1.0,
	}
}

// applyTextStyle writes the surface fields a text operation depends on,
// immediately before use. It is the only place that configures surfaces
// from a style, so no draw can observe stale state left by a prior
// caller. Stroke fields are written only on the stroke path.
func applyTextStyle(s Surface, font string, style TextStyle, withStroke bool) {
	s.SetFont(font)
	s.SetFillColor(style.FillColor)
	s.SetTextAlign(style.Align)
	s.SetTextBaseline(style.Baseline)
	if withStroke {
		s.SetStrokeColor(style.StrokeColor)
		s.SetLineWidth(style.LineWidth)
	}
}
