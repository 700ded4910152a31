package scene

import (
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed RGBA color (0xAABBGGRR, matching OpenGL vertex layout).
// The zero value is fully transparent black, which every surface treats
// as "draw nothing".
type Color uint32

// Common colors.
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorYellow      Color = 0xFF00FFFF
	ColorCyan        Color = 0xFFFFFF00
	ColorMagenta     Color = 0xFFFF00FF
	ColorGray        Color = 0xFF808080
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) Color {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// Unpack extracts the RGBA components.
func (c Color) Unpack() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// WithAlpha returns the color with its alpha scaled by f (0.0-1.0).
func (c Color) WithAlpha(f float32) Color {
	r, g, b, a := c.Unpack()
	return RGBA(r, g, b, uint8(clampf(f, 0, 1)*float32(a)))
}

// NRGBA converts the packed color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// namedColors covers the CSS keywords that show up in practice.
var namedColors = map[string]Color{
	"white":       ColorWhite,
	"black":       ColorBlack,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"yellow":      ColorYellow,
	"cyan":        ColorCyan,
	"magenta":     ColorMagenta,
	"gray":        ColorGray,
	"grey":        ColorGray,
	"transparent": ColorTransparent,
}

// ParseColor parses a CSS-style color string: "#rgb", "#rrggbb",
// "#rrggbbaa", "rgb(r,g,b)", "rgba(r,g,b,a)" or a color keyword.
// The boolean reports whether the string was recognized.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, false
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBFunc(s[4:len(s)-1], false)
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		return parseRGBFunc(s[5:len(s)-1], true)
	}
	return 0, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		// Short form: each digit doubles.
		var buf [6]byte
		for i := 0; i < 3; i++ {
			buf[i*2] = hex[i]
			buf[i*2+1] = hex[i]
		}
		hex = string(buf[:])
	case 6, 8:
	default:
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, false
	}
	if len(hex) == 8 {
		return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), true
	}
	return RGBA(uint8(v>>16), uint8(v>>8), uint8(v), 255), true
}

func parseRGBFunc(args string, hasAlpha bool) (Color, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return 0, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return 0, false
		}
		ch[i] = uint8(n)
	}
	a := uint8(255)
	if hasAlpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return 0, false
		}
		a = uint8(f * 255)
	}
	return RGBA(ch[0], ch[1], ch[2], a), true
}
