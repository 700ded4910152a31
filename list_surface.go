package scene

// ListSurface is a Surface that records text as textured glyph quads
// into a DrawList for later execution by a GPU backend. Fonts come from
// an injected FontProvider.
//
// Stroked text is approximated by drawing the glyph quads offset in a
// ring of the line width around the fill position; atlas fonts carry no
// outline geometry.
type ListSurface struct {
	list     *DrawList
	provider FontProvider

	font        Font
	parsed      ParsedFont
	fillColor   Color
	strokeColor Color
	lineWidth   float32
	align       Align
	baseline    Baseline
	alpha       float32
}

var _ Surface = (*ListSurface)(nil)

// NewListSurface creates a surface recording into dl with fonts
// resolved through provider.
func NewListSurface(dl *DrawList, provider FontProvider) *ListSurface {
	return &ListSurface{
		list:      dl,
		provider:  provider,
		lineWidth: 1,
		align:     AlignLeft,
		baseline:  BaselineTop,
		alpha:     1,
	}
}

// List returns the underlying draw list.
func (ls *ListSurface) List() *DrawList { return ls.list }

// SetFont implements Surface. The string is parsed and resolved
// immediately; a malformed string resolves to the provider's default
// face rather than failing.
func (ls *ListSurface) SetFont(font string) {
	ls.parsed = ParseFontString(font)
	ls.font = ls.provider.Resolve(ls.parsed)
}

// SetFillColor implements Surface.
func (ls *ListSurface) SetFillColor(c Color) { ls.fillColor = c }

// SetStrokeColor implements Surface.
func (ls *ListSurface) SetStrokeColor(c Color) { ls.strokeColor = c }

// SetLineWidth implements Surface.
func (ls *ListSurface) SetLineWidth(w float32) { ls.lineWidth = w }

// SetTextAlign implements Surface.
func (ls *ListSurface) SetTextAlign(a Align) { ls.align = a }

// SetTextBaseline implements Surface.
func (ls *ListSurface) SetTextBaseline(b Baseline) { ls.baseline = b }

// GlobalAlpha implements Surface.
func (ls *ListSurface) GlobalAlpha() float32 { return ls.alpha }

// SetGlobalAlpha implements Surface.
func (ls *ListSurface) SetGlobalAlpha(a float32) { ls.alpha = clampf(a, 0, 1) }

// MeasureText implements Surface.
func (ls *ListSurface) MeasureText(line string) float32 {
	if ls.font == nil {
		return 0
	}
	return ls.font.MeasureText(line, ls.parsed.Size).X
}

// FillText implements Surface.
func (ls *ListSurface) FillText(line string, x, y float32) {
	ls.emit(line, x, y, ls.fillColor.WithAlpha(ls.alpha))
}

// StrokeText implements Surface.
func (ls *ListSurface) StrokeText(line string, x, y float32) {
	c := ls.strokeColor.WithAlpha(ls.alpha)
	r := maxf(ls.lineWidth, 1)
	d := r * 0.7071 // diagonal offset for an even ring
	ls.emit(line, x-r, y, c)
	ls.emit(line, x+r, y, c)
	ls.emit(line, x, y-r, c)
	ls.emit(line, x, y+r, c)
	ls.emit(line, x-d, y-d, c)
	ls.emit(line, x+d, y-d, c)
	ls.emit(line, x-d, y+d, c)
	ls.emit(line, x+d, y+d, c)
}

// emit resolves alignment and baseline to a top-left origin and
// records the glyph quads.
func (ls *ListSurface) emit(line string, x, y float32, color Color) {
	if ls.font == nil || line == "" {
		return
	}

	size := ls.parsed.Size
	dim := ls.font.MeasureText(line, size)

	switch ls.align {
	case AlignRight:
		x -= dim.X
	case AlignCenter:
		x -= dim.X / 2
	}

	switch ls.baseline {
	case BaselineTop, BaselineHanging:
		// y is already the top edge
	case BaselineMiddle:
		y -= dim.Y / 2
	case BaselineAlphabetic:
		y -= ls.font.Ascent(size)
	case BaselineIdeographic, BaselineBottom:
		y -= dim.Y
	}

	ls.list.SetTexture(ls.font.TextureID())
	ls.list.AddGlyphQuads(ls.font.GlyphQuads(line, x, y, size), color)
}
