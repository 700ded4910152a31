package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// themeFile is the YAML shape of a text style preset:
//
//	fill: "#ffcc00"
//	stroke: black
//	lineWidth: 2
//	align: center
//	baseline: top
//	lineHeight: 1.2
//
// Omitted fields keep their defaults.
type themeFile struct {
	Fill       string   `yaml:"fill"`
	Stroke     string   `yaml:"stroke"`
	LineWidth  *float32 `yaml:"lineWidth"`
	Align      string   `yaml:"align"`
	Baseline   string   `yaml:"baseline"`
	LineHeight *float32 `yaml:"lineHeight"`
}

// LoadTextStyle reads a YAML text style preset from path.
func LoadTextStyle(path string) (TextStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TextStyle{}, fmt.Errorf("load text style: %w", err)
	}
	style, err := ParseTextStyle(data)
	if err != nil {
		return TextStyle{}, fmt.Errorf("load text style %s: %w", path, err)
	}
	return style, nil
}

// ParseTextStyle parses a YAML text style preset. Fields not present
// in the document keep the DefaultTextStyle values.
func ParseTextStyle(data []byte) (TextStyle, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return TextStyle{}, fmt.Errorf("parse theme: %w", err)
	}

	style := DefaultTextStyle()

	if tf.Fill != "" {
		c, ok := ParseColor(tf.Fill)
		if !ok {
			return TextStyle{}, fmt.Errorf("parse theme: unknown fill color %q", tf.Fill)
		}
		style.FillColor = c
	}
	if tf.Stroke != "" {
		c, ok := ParseColor(tf.Stroke)
		if !ok {
			return TextStyle{}, fmt.Errorf("parse theme: unknown stroke color %q", tf.Stroke)
		}
		style.StrokeColor = c
	}
	if tf.LineWidth != nil {
		style.LineWidth = *tf.LineWidth
	}
	if tf.Align != "" {
		switch a := Align(tf.Align); a {
		case AlignLeft, AlignRight, AlignCenter:
			style.Align = a
		default:
			return TextStyle{}, fmt.Errorf("parse theme: invalid align %q", tf.Align)
		}
	}
	if tf.Baseline != "" {
		switch b := Baseline(tf.Baseline); b {
		case BaselineTop, BaselineHanging, BaselineMiddle,
			BaselineAlphabetic, BaselineIdeographic, BaselineBottom:
			style.Baseline = b
		default:
			return TextStyle{}, fmt.Errorf("parse theme: invalid baseline %q", tf.Baseline)
		}
	}
	if tf.LineHeight != nil {
		if *tf.LineHeight < 0 {
			return TextStyle{}, fmt.Errorf("parse theme: negative lineHeight %v", *tf.LineHeight)
		}
		style.LineHeight = *tf.LineHeight
	}

	return style, nil
}
