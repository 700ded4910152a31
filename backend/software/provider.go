package software

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/go-scene2d/scene"
)

var providerLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// FaceProvider maps a parsed font string to a concrete face.
type FaceProvider interface {
	// Resolve walks the family stack in fallback order and returns the
	// best available face. It never returns nil; unknown families fall
	// back to a default face.
	Resolve(pf scene.ParsedFont) font.Face
}

// BasicProvider always resolves to basicfont.Face7x13. Its fixed
// metrics make test output deterministic regardless of requested
// family, size or style.
type BasicProvider struct{}

// Resolve implements FaceProvider.
func (BasicProvider) Resolve(scene.ParsedFont) font.Face {
	return basicfont.Face7x13
}

// fontKey identifies a registered font by family and style.
type fontKey struct {
	family string
	bold   bool
	italic bool
}

// faceKey identifies a sized face instance.
type faceKey struct {
	fontKey
	size float32
}

// OpenTypeProvider resolves faces from registered TTF/OTF fonts,
// caching sized face instances. The renderer model is a single render
// thread, so the caches are unsynchronized.
type OpenTypeProvider struct {
	fonts map[fontKey]*opentype.Font
	faces map[faceKey]font.Face
}

var _ FaceProvider = (*OpenTypeProvider)(nil)

// NewOpenTypeProvider creates an empty provider.
func NewOpenTypeProvider() *OpenTypeProvider {
	return &OpenTypeProvider{
		fonts: make(map[fontKey]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Register parses font data and registers it under family with the
// regular style.
func (p *OpenTypeProvider) Register(family string, data []byte) error {
	return p.RegisterStyle(family, false, false, data)
}

// RegisterStyle registers a style variant (bold and/or italic) of a
// family.
func (p *OpenTypeProvider) RegisterStyle(family string, bold, italic bool, data []byte) error {
	ft, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("register font %s: %w", family, err)
	}
	p.fonts[fontKey{family: strings.ToLower(family), bold: bold, italic: italic}] = ft
	return nil
}

// RegisterFile loads and registers a font file.
func (p *OpenTypeProvider) RegisterFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("register font %s: %w", family, err)
	}
	return p.Register(family, data)
}

// Resolve implements FaceProvider. Families are tried in order; an
// exact style match is preferred, then the family's regular style.
// When nothing matches, or the size is not positive, the basic face is
// returned.
func (p *OpenTypeProvider) Resolve(pf scene.ParsedFont) font.Face {
	if !(pf.Size > 0) { // also rejects NaN
		return basicfont.Face7x13
	}
	for _, family := range pf.Families {
		family = strings.ToLower(family)
		ft, ok := p.fonts[fontKey{family: family, bold: pf.Bold, italic: pf.Italic}]
		if !ok {
			ft, ok = p.fonts[fontKey{family: family}]
		}
		if ok {
			return p.face(family, pf, ft)
		}
	}
	return basicfont.Face7x13
}

func (p *OpenTypeProvider) face(family string, pf scene.ParsedFont, ft *opentype.Font) font.Face {
	key := faceKey{
		fontKey: fontKey{family: family, bold: pf.Bold, italic: pf.Italic},
		size:    pf.Size,
	}
	if f, ok := p.faces[key]; ok {
		return f
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(pf.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		providerLogger.Warn("face creation failed, using basic face",
			"family", family, "size", pf.Size, "error", err)
		return basicfont.Face7x13
	}
	p.faces[key] = f
	return f
}
