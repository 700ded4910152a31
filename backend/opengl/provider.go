package opengl

import (
	"strings"

	"golang.org/x/image/font/basicfont"

	scene "github.com/go-scene2d/scene"
)

// fontKey identifies a registered atlas font by family and style.
type fontKey struct {
	family string
	bold   bool
	italic bool
}

// Provider implements scene.FontProvider over registered atlas fonts.
// Unknown families resolve to a fallback atlas built from the fixed
// 7x13 basic face.
type Provider struct {
	fonts    map[fontKey]*AtlasFont
	fallback *AtlasFont
}

var _ scene.FontProvider = (*Provider)(nil)

// NewProvider creates a provider with the basic-face fallback atlas.
// A current GL context is required.
func NewProvider() (*Provider, error) {
	fallback, err := NewAtlasFont(basicfont.Face7x13, 13, nil)
	if err != nil {
		return nil, err
	}
	return &Provider{
		fonts:    make(map[fontKey]*AtlasFont),
		fallback: fallback,
	}, nil
}

// Register adds an atlas font for a family's regular style.
func (p *Provider) Register(family string, f *AtlasFont) {
	p.RegisterStyle(family, false, false, f)
}

// RegisterStyle adds an atlas font for a style variant of a family.
func (p *Provider) RegisterStyle(family string, bold, italic bool, f *AtlasFont) {
	p.fonts[fontKey{family: strings.ToLower(family), bold: bold, italic: italic}] = f
}

// Resolve implements scene.FontProvider. Families are tried in
// fallback order; an exact style match wins over the regular style.
func (p *Provider) Resolve(pf scene.ParsedFont) scene.Font {
	for _, family := range pf.Families {
		family = strings.ToLower(family)
		if f, ok := p.fonts[fontKey{family: family, bold: pf.Bold, italic: pf.Italic}]; ok {
			return f
		}
		if f, ok := p.fonts[fontKey{family: family}]; ok {
			return f
		}
	}
	return p.fallback
}

// Delete releases all registered atlas textures, fallback included.
func (p *Provider) Delete() {
	for _, f := range p.fonts {
		f.Delete()
	}
	p.fallback.Delete()
}
