package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	scene "github.com/go-scene2d/scene"
)

// glyphInfo describes one glyph's atlas cell and metrics in pixels at
// the font's native size.
type glyphInfo struct {
	u0, v0, u1, v1     float32 // Texture coordinates
	w, h               float32 // Cell size
	bearingX, bearingY float32 // bearingY is baseline-to-top, positive up
	advance            float32
}

// AtlasFont is a scene.Font backed by a pre-rasterized glyph atlas
// stored in an alpha-only (R channel) OpenGL texture. Glyphs are
// rasterized once at the native size and scaled on the GPU for other
// requested sizes.
//
// A current GL context is required at construction time.
type AtlasFont struct {
	tex        uint32
	glyphs     map[rune]glyphInfo
	face       font.Face // kept for kerning lookups
	nativeSize float32
	ascent     float32
	descent    float32
	spaceAdv   float32

	quadBuf []scene.GlyphQuad // reused between GlyphQuads calls
}

var _ scene.Font = (*AtlasFont)(nil)

const (
	atlasWidth = 512
	atlasPad   = 1
)

// defaultRunes is the printable ASCII range.
func defaultRunes() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return runes
}

// NewAtlasFont rasterizes the given runes from face into an atlas
// texture. nativeSize is the nominal pixel size the face was created
// at; it is the basis for scaling to requested draw sizes. A nil or
// empty rune set defaults to printable ASCII.
func NewAtlasFont(face font.Face, nativeSize float32, runes []rune) (*AtlasFont, error) {
	if len(runes) == 0 {
		runes = defaultRunes()
	}

	met := face.Metrics()
	af := &AtlasFont{
		glyphs:     make(map[rune]glyphInfo, len(runes)),
		face:       face,
		nativeSize: nativeSize,
		ascent:     float32(met.Ascent) / 64,
		descent:    float32(met.Descent) / 64,
	}
	if adv, ok := face.GlyphAdvance(' '); ok {
		af.spaceAdv = float32(adv) / 64
	}

	// First pass: place cells row by row.
	type cell struct {
		r      rune
		x, y   int
		w, h   int
		bounds fixed.Rectangle26_6
		adv    fixed.Int26_6
	}
	var cells []cell
	penX, penY, rowH := atlasPad, atlasPad, 0
	for _, r := range runes {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		w := (bounds.Max.X - bounds.Min.X).Ceil()
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if penX+w+atlasPad > atlasWidth {
			penX = atlasPad
			penY += rowH + atlasPad
			rowH = 0
		}
		cells = append(cells, cell{r: r, x: penX, y: penY, w: w, h: h, bounds: bounds, adv: adv})
		penX += w + atlasPad
		if h > rowH {
			rowH = h
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("atlas font: no glyphs rasterized")
	}
	texHeight := nextPow2(penY + rowH + atlasPad)

	// Second pass: rasterize into an RGBA staging image; coverage ends
	// up in the alpha channel.
	img := image.NewRGBA(image.Rect(0, 0, atlasWidth, texHeight))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	for _, c := range cells {
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(c.x) - c.bounds.Min.X,
			Y: fixed.I(c.y) - c.bounds.Min.Y,
		}
		drawer.DrawString(string(c.r))

		af.glyphs[c.r] = glyphInfo{
			u0:       float32(c.x) / atlasWidth,
			v0:       float32(c.y) / float32(texHeight),
			u1:       float32(c.x+c.w) / atlasWidth,
			v1:       float32(c.y+c.h) / float32(texHeight),
			w:        float32(c.w),
			h:        float32(c.h),
			bearingX: float32(c.bounds.Min.X) / 64,
			bearingY: -float32(c.bounds.Min.Y) / 64,
			advance:  float32(c.adv) / 64,
		}
	}

	// Extract coverage and upload as an R-channel texture.
	data := make([]byte, atlasWidth*texHeight)
	for i := range data {
		data[i] = img.Pix[i*4+3]
	}
	gl.GenTextures(1, &af.tex)
	gl.BindTexture(gl.TEXTURE_2D, af.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasWidth, int32(texHeight), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return af, nil
}

// TextureID implements scene.Font.
func (af *AtlasFont) TextureID() uint32 { return af.tex }

// scale converts a requested size to an atlas scale factor, degrading
// to 1 for non-positive or NaN sizes.
func (af *AtlasFont) scale(sizePx float32) float32 {
	s := sizePx / af.nativeSize
	if !(s > 0) {
		return 1
	}
	return s
}

// MeasureText implements scene.Font.
func (af *AtlasFont) MeasureText(text string, sizePx float32) scene.Vec2 {
	s := af.scale(sizePx)
	var width float32
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			width += float32(af.face.Kern(prev, r)) / 64
		}
		if g, ok := af.glyphs[r]; ok {
			width += g.advance
		} else {
			width += af.spaceAdv
		}
		prev = r
	}
	return scene.Vec2{X: width * s, Y: (af.ascent + af.descent) * s}
}

// Ascent implements scene.Font.
func (af *AtlasFont) Ascent(sizePx float32) float32 {
	return af.ascent * af.scale(sizePx)
}

// GlyphQuads implements scene.Font. The returned slice is reused on
// the next call.
func (af *AtlasFont) GlyphQuads(text string, x, y, sizePx float32) []scene.GlyphQuad {
	s := af.scale(sizePx)
	af.quadBuf = af.quadBuf[:0]

	baseline := y + af.ascent*s
	penX := x
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			penX += float32(af.face.Kern(prev, r)) / 64 * s
		}
		g, ok := af.glyphs[r]
		if !ok {
			penX += af.spaceAdv * s
			prev = r
			continue
		}
		if g.w > 0 && g.h > 0 {
			x0 := penX + g.bearingX*s
			y0 := baseline - g.bearingY*s
			af.quadBuf = append(af.quadBuf, scene.GlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + g.w*s, Y1: y0 + g.h*s,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		penX += g.advance * s
		prev = r
	}
	return af.quadBuf
}

// Delete releases the atlas texture.
func (af *AtlasFont) Delete() {
	if af.tex != 0 {
		gl.DeleteTextures(1, &af.tex)
		af.tex = 0
	}
}

// nextPow2 rounds up to a power of two, as some drivers still prefer
// power-of-two texture heights. Non-positive input rounds up to 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
