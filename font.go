package scene

import (
	"math"
	"strconv"
	"strings"
)

// FontSize is a numeric size with a CSS-style unit suffix.
type FontSize struct {
	Value float32
	Unit  string
}

// Px returns a pixel font size.
func Px(v float32) FontSize {
	return FontSize{Value: v, Unit: "px"}
}

// ParseSize parses a size given as text. A bare number gets the "px"
// unit; any suffix after the numeric prefix is kept verbatim as the
// unit ("1.5em" stays "1.5em"). A missing numeric prefix yields NaN,
// which propagates into the serialized font string; the surface is
// expected to reject or ignore the malformed result.
func ParseSize(s string) FontSize {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			i++
			continue
		}
		break
	}
	unit := strings.TrimSpace(s[i:])
	if unit == "" {
		unit = "px"
	}
	v, err := strconv.ParseFloat(s[:i], 32)
	if err != nil {
		return FontSize{Value: float32(math.NaN()), Unit: unit}
	}
	return FontSize{Value: float32(v), Unit: unit}
}

// String serializes the size as "<value><unit>".
func (fs FontSize) String() string {
	return strconv.FormatFloat(float64(fs.Value), 'f', -1, 32) + fs.Unit
}

// FontDescriptor holds a font family stack plus size and serializes
// them into the surface's font-string format. It is replaced wholesale
// by Text.SetFont and read on every draw and measure call.
type FontDescriptor struct {
	families   []string
	size       FontSize
	serialized string
}

// NewFontDescriptor parses a comma-separated family list, trims each
// entry and wraps names without existing quoting in double quotes.
// The serialized form is `<size><unit> <fam1>,<fam2>,...`.
func NewFontDescriptor(familyList string, size FontSize) *FontDescriptor {
	d := &FontDescriptor{
		families: quoteFamilies(familyList),
		size:     size,
	}
	d.serialized = size.String() + " " + strings.Join(d.families, ",")
	return d
}

// quoteFamilies splits familyList on commas, trims whitespace and
// quotes entries that carry no quoting of their own. Pre-quoted names
// (single or double) pass through untouched, so quoting is idempotent.
func quoteFamilies(familyList string) []string {
	parts := strings.Split(familyList, ",")
	families := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.ContainsAny(p, `'"`) {
			p = `"` + p + `"`
		}
		families = append(families, p)
	}
	return families
}

// Size returns the nominal size, the basis for line advance.
func (d *FontDescriptor) Size() FontSize { return d.size }

// Families returns the quoted family stack in fallback order.
func (d *FontDescriptor) Families() []string { return d.families }

// String returns the serialized font string.
func (d *FontDescriptor) String() string { return d.serialized }

// Bold prepends the "bold" keyword to the serialized font string.
// Reapplication is cumulative, not deduplicated; callers that toggle
// styles should rebuild the descriptor instead.
func (d *FontDescriptor) Bold() *FontDescriptor {
	d.serialized = "bold " + d.serialized
	return d
}

// Italic prepends the "italic" keyword to the serialized font string.
// Same cumulative contract as Bold.
func (d *FontDescriptor) Italic() *FontDescriptor {
	d.serialized = "italic " + d.serialized
	return d
}

// ParsedFont is the decomposed form of a serialized font string,
// consumed by concrete surfaces when resolving an actual face.
type ParsedFont struct {
	Bold     bool
	Italic   bool
	Size     float32
	Unit     string
	Families []string // unquoted, in fallback order
}

// ParseFontString decomposes a font string produced by FontDescriptor.
// Unknown leading keywords are skipped so strings like
// "italic bold 20px \"Arial\"" resolve regardless of keyword order.
func ParseFontString(font string) ParsedFont {
	var pf ParsedFont
	rest := strings.TrimSpace(font)

	for {
		word, tail, found := strings.Cut(rest, " ")
		if word == "bold" {
			pf.Bold = true
		} else if word == "italic" {
			pf.Italic = true
		} else if word != "normal" {
			break
		}
		if !found {
			return pf
		}
		rest = strings.TrimSpace(tail)
	}

	sizeTok, famTok, _ := strings.Cut(rest, " ")
	fs := ParseSize(sizeTok)
	pf.Size = fs.Value
	pf.Unit = fs.Unit

	for _, fam := range strings.Split(famTok, ",") {
		fam = strings.TrimSpace(fam)
		fam = strings.Trim(fam, `'"`)
		if fam != "" {
			pf.Families = append(pf.Families, fam)
		}
	}
	return pf
}
