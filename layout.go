package scene

import (
	"strings"
	"unicode"
)

// SplitLines splits text on the newline character. Empty lines are
// preserved as empty strings: a blank line still advances the cursor.
// A single line with no newline comes back as a one-element slice.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// trimTrailing strips trailing whitespace from a line. Leading and
// interior whitespace stay; trailing spaces must not count visually or
// metrically.
func trimTrailing(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// measureBlock aggregates block metrics for a set of lines: the widest
// trimmed line and count × advance. The surface must already be
// configured with the font these lines will be drawn in.
func measureBlock(s Surface, lines []string, advance float32) Vec2 {
	var width float32
	for _, line := range lines {
		width = maxf(width, s.MeasureText(trimTrailing(line)))
	}
	return Vec2{
		X: width,
		Y: float32(len(lines)) * advance,
	}
}
