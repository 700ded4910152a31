// Package software provides a CPU Surface implementation drawing onto
// standard library images via golang.org/x/image/font. It is the
// deterministic backend used by tests and the render CLI.
package software

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-scene2d/scene"
)

// Surface draws text onto an in-memory RGBA image. Stroked text is
// approximated by repeating the fill in a ring of the line width
// around the anchor; bitmap faces carry no outline geometry.
type Surface struct {
	img      *image.RGBA
	provider FaceProvider

	face        font.Face
	parsed      scene.ParsedFont
	fillColor   scene.Color
	strokeColor scene.Color
	lineWidth   float32
	align       scene.Align
	baseline    scene.Baseline
	alpha       float32
}

var _ scene.Surface = (*Surface)(nil)

// Option configures a Surface.
type Option func(*Surface)

// WithProvider sets the face provider. Defaults to BasicProvider.
func WithProvider(p FaceProvider) Option {
	return func(s *Surface) { s.provider = p }
}

// WithBackground fills the image with a solid color before any draw.
func WithBackground(c scene.Color) Option {
	return func(s *Surface) {
		draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
	}
}

// New creates a width×height surface. The image starts fully
// transparent unless WithBackground is given.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		provider:  BasicProvider{},
		lineWidth: 1,
		align:     scene.AlignLeft,
		baseline:  scene.BaselineTop,
		alpha:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// SetFont implements scene.Surface. Malformed font strings fall back
// to the provider's default face.
func (s *Surface) SetFont(fontStr string) {
	s.parsed = scene.ParseFontString(fontStr)
	s.face = s.provider.Resolve(s.parsed)
}

// SetFillColor implements scene.Surface.
func (s *Surface) SetFillColor(c scene.Color) { s.fillColor = c }

// SetStrokeColor implements scene.Surface.
func (s *Surface) SetStrokeColor(c scene.Color) { s.strokeColor = c }

// SetLineWidth implements scene.Surface.
func (s *Surface) SetLineWidth(w float32) { s.lineWidth = w }

// SetTextAlign implements scene.Surface.
func (s *Surface) SetTextAlign(a scene.Align) { s.align = a }

// SetTextBaseline implements scene.Surface.
func (s *Surface) SetTextBaseline(b scene.Baseline) { s.baseline = b }

// GlobalAlpha implements scene.Surface.
func (s *Surface) GlobalAlpha() float32 { return s.alpha }

// SetGlobalAlpha implements scene.Surface.
func (s *Surface) SetGlobalAlpha(a float32) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s.alpha = a
}

// MeasureText implements scene.Surface.
func (s *Surface) MeasureText(line string) float32 {
	if s.face == nil {
		return 0
	}
	d := &font.Drawer{Face: s.face}
	return float32(d.MeasureString(line)) / 64
}

// FillText implements scene.Surface.
func (s *Surface) FillText(line string, x, y float32) {
	s.drawLine(line, x, y, s.fillColor)
}

// StrokeText implements scene.Surface.
func (s *Surface) StrokeText(line string, x, y float32) {
	r := s.lineWidth
	if r < 1 {
		r = 1
	}
	d := r * 0.7071
	for _, off := range [8][2]float32{
		{-r, 0}, {r, 0}, {0, -r}, {0, r},
		{-d, -d}, {d, -d}, {-d, d}, {d, d},
	} {
		s.drawLine(line, x+off[0], y+off[1], s.strokeColor)
	}
}

// drawLine draws a single line in the given color, resolving the
// configured alignment and baseline against the face metrics.
func (s *Surface) drawLine(line string, x, y float32, c scene.Color) {
	if s.face == nil || line == "" {
		return
	}
	col := c.WithAlpha(s.alpha)
	if _, _, _, a := col.Unpack(); a == 0 {
		return
	}

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: s.face,
	}

	met := s.face.Metrics()
	ascent := float32(met.Ascent) / 64
	descent := float32(met.Descent) / 64

	switch s.align {
	case scene.AlignRight:
		x -= float32(d.MeasureString(line)) / 64
	case scene.AlignCenter:
		x -= float32(d.MeasureString(line)) / 64 / 2
	}

	// The drawer dot sits on the alphabetic baseline.
	switch s.baseline {
	case scene.BaselineTop, scene.BaselineHanging:
		y += ascent
	case scene.BaselineMiddle:
		y += (ascent - descent) / 2
	case scene.BaselineAlphabetic:
		// y is the baseline already
	case scene.BaselineIdeographic, scene.BaselineBottom:
		y -= descent
	}

	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
	d.DrawString(line)
}
