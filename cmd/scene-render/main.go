// Command scene-render renders a text block to a PNG or PDF file.
//
//	scene-render --text "Hello\nWorld" --size 20 --fill '#ffcc00' --out hello.png
//	scene-render --text Title --font-file DejaVuSans.ttf --family DejaVu --out title.pdf
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	scene "github.com/go-scene2d/scene"
	"github.com/go-scene2d/scene/backend/software"
	"github.com/go-scene2d/scene/backend/vector"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "scene-render:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		text        = flag.String("text", "", "text to render; \\n starts a new line")
		family      = flag.StringP("family", "f", "sans-serif", "font family list, comma separated")
		size        = flag.StringP("size", "s", "16", "font size, bare number means px")
		fill        = flag.String("fill", "white", "fill color")
		stroke      = flag.String("stroke", "", "stroke color; empty disables the outline pass")
		strokeWidth = flag.Float32("stroke-width", 1, "outline thickness in px")
		align       = flag.String("align", "left", "horizontal alignment: left, right or center")
		lineHeight  = flag.Float32("line-height", 1.0, "line height multiplier")
		opacity     = flag.Float32("opacity", 1.0, "text opacity")
		stylePath   = flag.String("style", "", "YAML text style preset; flags override it")
		fontFile    = flag.String("font-file", "", "TTF/OTF file registered under --family")
		width       = flag.Int("width", 640, "output width in px")
		height      = flag.Int("height", 480, "output height in px")
		background  = flag.String("background", "", "background color; empty keeps it transparent")
		x           = flag.Float32("x", 16, "draw origin x")
		y           = flag.Float32("y", 16, "draw origin y")
		out         = flag.StringP("out", "o", "out.png", "output file; .png or .pdf")
	)
	flag.Parse()

	if *text == "" {
		return fmt.Errorf("--text is required")
	}
	content := strings.ReplaceAll(*text, `\n`, "\n")

	style := scene.DefaultTextStyle()
	if *stylePath != "" {
		var err error
		style, err = scene.LoadTextStyle(*stylePath)
		if err != nil {
			return err
		}
	}
	if c, ok := scene.ParseColor(*fill); ok {
		style.FillColor = c
	} else if flag.CommandLine.Changed("fill") {
		return fmt.Errorf("invalid fill color %q", *fill)
	}
	withStroke := false
	if *stroke != "" {
		c, ok := scene.ParseColor(*stroke)
		if !ok {
			return fmt.Errorf("invalid stroke color %q", *stroke)
		}
		style.StrokeColor = c
		style.LineWidth = *strokeWidth
		withStroke = true
	}
	style.Align = scene.Align(*align)
	style.LineHeight = *lineHeight

	t := scene.NewText(*family, scene.ParseSize(*size), scene.WithOpacity(*opacity))
	t.SetStyle(style)

	switch ext := strings.ToLower(filepath.Ext(*out)); ext {
	case ".png":
		return renderPNG(t, content, *fontFile, *family, *width, *height, *background, *x, *y, withStroke, *out)
	case ".pdf":
		return renderPDF(t, content, *fontFile, *family, *width, *height, *x, *y, withStroke, *out)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func renderPNG(t *scene.Text, content, fontFile, family string, width, height int, background string, x, y float32, withStroke bool, out string) error {
	opts := []software.Option{}
	if background != "" {
		c, ok := scene.ParseColor(background)
		if !ok {
			return fmt.Errorf("invalid background color %q", background)
		}
		opts = append(opts, software.WithBackground(c))
	}
	if fontFile != "" {
		provider := software.NewOpenTypeProvider()
		if err := provider.RegisterFile(firstFamily(family), fontFile); err != nil {
			return err
		}
		opts = append(opts, software.WithProvider(provider))
	}
	surface := software.New(width, height, opts...)

	draw(t, surface, content, x, y, withStroke)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, surface.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return nil
}

func renderPDF(t *scene.Text, content, fontFile, family string, width, height int, x, y float32, withStroke bool, out string) error {
	if fontFile == "" {
		return fmt.Errorf("--font-file is required for PDF output")
	}
	surface := vector.New(float64(width), float64(height))
	data, err := os.ReadFile(fontFile)
	if err != nil {
		return err
	}
	if err := surface.RegisterFont(firstFamily(family), data); err != nil {
		return err
	}

	draw(t, surface, content, x, y, withStroke)

	pdf, err := surface.PDF()
	if err != nil {
		return err
	}
	return os.WriteFile(out, pdf, 0o644)
}

func draw(t *scene.Text, s scene.Surface, content string, x, y float32, withStroke bool) {
	if withStroke {
		t.DrawStroke(s, content, x, y)
	} else {
		t.Draw(s, content, x, y)
	}
}

// firstFamily extracts the first entry of a comma-separated family
// list for font registration.
func firstFamily(list string) string {
	first, _, _ := strings.Cut(list, ",")
	return strings.TrimSpace(first)
}
