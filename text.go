package scene

import "math"

// Text renders multi-line strings onto a Surface. It owns a font
// descriptor and a text style, but no text: strings are supplied per
// call, so one instance can draw many distinct strings in a frame.
//
// Every operation reconfigures the surface from the descriptor and
// style before touching it; the surface is never trusted to hold prior
// state.
type Text struct {
	Node
	font  *FontDescriptor
	style TextStyle
}

// TextOption configures a Text component.
type TextOption func(*Text)

// WithFill sets the fill color.
func WithFill(c Color) TextOption {
	return func(t *Text) { t.style.FillColor = c }
}

// WithAlign sets the horizontal alignment. The empty string leaves the
// prior alignment unchanged.
func WithAlign(a Align) TextOption {
	return func(t *Text) {
		if a != "" {
			t.style.Align = a
		}
	}
}

// WithBaseline sets the text baseline.
func WithBaseline(b Baseline) TextOption {
	return func(t *Text) {
		if b != "" {
			t.style.Baseline = b
		}
	}
}

// WithStroke sets the stroke color and width used by DrawStroke.
func WithStroke(c Color, width float32) TextOption {
	return func(t *Text) {
		t.style.StrokeColor = c
		t.style.LineWidth = width
	}
}

// WithLineHeight sets the line height multiplier (≥ 0) applied against
// the font's nominal size to compute vertical advance.
func WithLineHeight(h float32) TextOption {
	return func(t *Text) { t.style.LineHeight = h }
}

// WithOpacity sets the node opacity.
func WithOpacity(a float32) TextOption {
	return func(t *Text) { t.SetOpacity(a) }
}

// NewText creates a text component with the given family list and size.
//
//	t := scene.NewText("Arial", scene.Px(20),
//	    scene.WithFill(scene.ColorWhite),
//	    scene.WithAlign(scene.AlignLeft))
func NewText(familyList string, size FontSize, opts ...TextOption) *Text {
	t := &Text{
		Node:  NewNode(),
		font:  NewFontDescriptor(familyList, size),
		style: DefaultTextStyle(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetFont replaces the font descriptor wholesale. Options are applied
// after the swap, so fill and alignment change only when explicitly
// given.
func (t *Text) SetFont(familyList string, size FontSize, opts ...TextOption) {
	t.font = NewFontDescriptor(familyList, size)
	for _, opt := range opts {
		opt(t)
	}
}

// Font returns the current font descriptor for direct styling:
//
//	t.Font().Bold()
func (t *Text) Font() *FontDescriptor { return t.font }

// Style returns the current text style.
func (t *Text) Style() TextStyle { return t.style }

// SetStyle replaces the text style.
func (t *Text) SetStyle(style TextStyle) { t.style = style }

// anchor exposes the node for scene parenting.
func (t *Text) anchor() *Node { return &t.Node }

// lineAdvance is the vertical distance between successive lines.
func (t *Text) lineAdvance() float32 {
	return t.font.Size().Value * t.style.LineHeight
}

// Measure returns the block metrics of text under the current font and
// style, and caches them as the node's bounding box. The surface is
// synchronized first, fill color included even though measurement does
// not need it, so no query ever sees stale configuration.
func (t *Text) Measure(s Surface, text string) Vec2 {
	applyTextStyle(s, t.font.String(), t.style, false)
	m := measureBlock(s, SplitLines(text), t.lineAdvance())
	t.setSize(m.X, m.Y)
	return m
}

// Draw fills text line by line starting at (x, y). Coordinates are
// truncated to integer pixels to avoid sub-pixel blur on surfaces that
// antialias poorly at fractional positions. The surface's global alpha
// is scaled by the component's effective opacity for the duration of
// the call and restored on every exit path.
func (t *Text) Draw(s Surface, text string, x, y float32) {
	t.draw(s, text, x, y, false)
}

// DrawStroke outlines then fills each line at identical coordinates,
// stroke first so the fill sits on top and stays crisp. It is the more
// expensive path; prefer Draw unless an outline is required.
func (t *Text) DrawStroke(s Surface, text string, x, y float32) {
	t.draw(s, text, x, y, true)
}

func (t *Text) draw(s Surface, text string, x, y float32, withStroke bool) {
	x = truncf(x)
	y = truncf(y)

	prevAlpha := s.GlobalAlpha()
	s.SetGlobalAlpha(prevAlpha * t.EffectiveOpacity())
	defer s.SetGlobalAlpha(prevAlpha)

	t.SetPosition(Vec2{X: x, Y: y})
	applyTextStyle(s, t.font.String(), t.style, withStroke)

	advance := t.lineAdvance()
	for _, line := range SplitLines(text) {
		line = trimTrailing(line)
		if withStroke {
			s.StrokeText(line, x, y)
		}
		s.FillText(line, x, y)
		y += advance
	}
}

// truncf truncates toward zero.
func truncf(v float32) float32 {
	return float32(math.Trunc(float64(v)))
}

// Label pairs a Text component with owned content so it can live in a
// Scene. The underlying Text stays stateless; the label just replays
// its content and position on every render.
type Label struct {
	*Text
	content string
	at      Vec2
}

// NewLabel creates a label drawing content at the given position.
func NewLabel(content string, at Vec2, familyList string, size FontSize, opts ...TextOption) *Label {
	return &Label{
		Text:    NewText(familyList, size, opts...),
		content: content,
		at:      at,
	}
}

// SetContent replaces the label's text.
func (l *Label) SetContent(content string) { l.content = content }

// Content returns the label's text.
func (l *Label) Content() string { return l.content }

// MoveTo repositions the label.
func (l *Label) MoveTo(at Vec2) { l.at = at }

// DrawTo implements Drawable.
func (l *Label) DrawTo(s Surface) {
	l.Draw(s, l.content, l.at.X, l.at.Y)
}

// DrawFunc adapts a function to the Drawable interface.
type DrawFunc func(Surface)

// DrawTo implements Drawable.
func (f DrawFunc) DrawTo(s Surface) { f(s) }
