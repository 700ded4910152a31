// Package vector provides a Surface producing vector output (PDF) via
// github.com/tdewolff/canvas. Coordinates are in canvas units with the
// origin at the top-left, matching the scene package's pixel model.
package vector

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	scene "github.com/go-scene2d/scene"
)

// Surface records text onto a tdewolff canvas. Fonts are registered
// per family with optional bold/italic variants; unregistered families
// fall back to the first registered family, or silently skip the draw
// when no font is loaded at all.
//
// Stroked text is approximated with an offset ring in the stroke
// color, as with the raster backends.
type Surface struct {
	c   *canvas.Canvas
	ctx *canvas.Context

	families map[string]*canvas.FontFamily
	fallback *canvas.FontFamily

	parsed      scene.ParsedFont
	fillColor   scene.Color
	strokeColor scene.Color
	lineWidth   float32
	align       scene.Align
	baseline    scene.Baseline
	alpha       float32
}

var _ scene.Surface = (*Surface)(nil)

// New creates a width×height vector surface.
func New(width, height float64) *Surface {
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin

	return &Surface{
		c:         c,
		ctx:       ctx,
		families:  make(map[string]*canvas.FontFamily),
		lineWidth: 1,
		align:     scene.AlignLeft,
		baseline:  scene.BaselineTop,
		alpha:     1,
	}
}

// RegisterFont parses font data and registers it under family with the
// regular style. The first registered family becomes the fallback.
func (s *Surface) RegisterFont(family string, data []byte) error {
	return s.RegisterFontStyle(family, false, false, data)
}

// RegisterFontStyle registers a bold and/or italic variant of a family.
func (s *Surface) RegisterFontStyle(family string, bold, italic bool, data []byte) error {
	key := strings.ToLower(family)
	fam, ok := s.families[key]
	if !ok {
		fam = canvas.NewFontFamily(family)
		s.families[key] = fam
	}
	if err := fam.LoadFont(data, 0, fontStyle(bold, italic)); err != nil {
		return fmt.Errorf("register font %s: %w", family, err)
	}
	if s.fallback == nil {
		s.fallback = fam
	}
	return nil
}

func fontStyle(bold, italic bool) canvas.FontStyle {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	if italic {
		style |= canvas.FontItalic
	}
	return style
}

// SetFont implements scene.Surface.
func (s *Surface) SetFont(font string) {
	s.parsed = scene.ParseFontString(font)
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

// face resolves the current parsed font to a sized face in the given
// color, or nil when no usable font is registered.
func (s *Surface) face(c scene.Color) *canvas.FontFace {
	fam := s.fallback
	for _, name := range s.parsed.Families {
		if f, ok := s.families[strings.ToLower(name)]; ok {
			fam = f
			break
		}
	}
	if fam == nil {
		return nil
	}
	size := float64(s.parsed.Size)
	if !(size > 0) { // malformed font strings render nothing
		return nil
	}
	col := c.WithAlpha(s.alpha).NRGBA()
	return fam.Face(size, col, fontStyle(s.parsed.Bold, s.parsed.Italic), canvas.FontNormal)
}

// MeasureText implements scene.Surface.
func (s *Surface) MeasureText(line string) float32 {
	face := s.face(s.fillColor)
	if face == nil {
		return 0
	}
	return float32(face.TextWidth(line))
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

func (s *Surface) drawLine(line string, x, y float32, c scene.Color) {
	face := s.face(c)
	if face == nil || line == "" {
		return
	}

	align := canvas.Left
	switch s.align {
	case scene.AlignCenter:
		align = canvas.Center
	case scene.AlignRight:
		align = canvas.Right
	}

	// DrawText anchors on the alphabetic baseline.
	met := face.Metrics()
	baseline := float64(y)
	switch s.baseline {
	case scene.BaselineTop, scene.BaselineHanging:
		baseline += met.Ascent
	case scene.BaselineMiddle:
		baseline += (met.Ascent - met.Descent) / 2
	case scene.BaselineAlphabetic:
		// y is the baseline already
	case scene.BaselineIdeographic, scene.BaselineBottom:
		baseline -= met.Descent
	}

	s.ctx.DrawText(float64(x), baseline, canvas.NewTextLine(face, line, align))
}

// PDF renders the accumulated canvas to a single-page PDF.
func (s *Surface) PDF() ([]byte, error) {
	var buf bytes.Buffer
	writer := pdf.New(&buf, s.c.W, s.c.H, nil)
	s.c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
