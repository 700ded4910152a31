package scene_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	scene "github.com/go-scene2d/scene"
)

func TestFontDescriptorSerialization(t *testing.T) {
	cases := []struct {
		families string
		size     scene.FontSize
		want     string
	}{
		{"Arial", scene.Px(20), `20px "Arial"`},
		{"Arial, Helvetica Neue", scene.Px(12), `12px "Arial","Helvetica Neue"`},
		{" Verdana , sans-serif ", scene.Px(10), `10px "Verdana","sans-serif"`},
		{"Arial,,sans-serif", scene.Px(10), `10px "Arial","sans-serif"`},
		{"Times", scene.ParseSize("1.5em"), `1.5em "Times"`},
		{"Times", scene.ParseSize("20"), `20px "Times"`},
		{"Times", scene.ParseSize("75%"), `75% "Times"`},
	}
	for _, tc := range cases {
		d := scene.NewFontDescriptor(tc.families, tc.size)
		if got := d.String(); got != tc.want {
			t.Errorf("NewFontDescriptor(%q, %v) = %q, want %q", tc.families, tc.size, got, tc.want)
		}
	}
}

func TestFontDescriptorQuotingIdempotent(t *testing.T) {
	// Families that already carry a quote are left untouched, so a
	// family list built from a previous serialization does not grow
	// another layer of quotes.
	d := scene.NewFontDescriptor(`"Arial",'Courier New'`, scene.Px(14))
	if got := d.String(); got != `14px "Arial",'Courier New'` {
		t.Errorf("String() = %q, want existing quotes preserved", got)
	}
}

func TestFontSizeNonNumeric(t *testing.T) {
	fs := scene.ParseSize("huge")
	if !math.IsNaN(float64(fs.Value)) {
		t.Errorf("Value = %v, want NaN for a non-numeric size", fs.Value)
	}
	d := scene.NewFontDescriptor("Arial", fs)
	if !strings.HasPrefix(d.String(), "NaN") {
		t.Errorf("String() = %q, want NaN propagated into the serialization", d.String())
	}
}

func TestFontDescriptorBoldItalic(t *testing.T) {
	d := scene.NewFontDescriptor("Arial", scene.Px(20))

	d.Bold()
	if got := d.String(); got != `bold 20px "Arial"` {
		t.Errorf("after Bold: %q", got)
	}
	d.Italic()
	if got := d.String(); got != `italic bold 20px "Arial"` {
		t.Errorf("after Italic: %q", got)
	}

	// Repeated calls keep prepending. Callers that toggle styles
	// should build a fresh descriptor instead.
	d.Bold()
	if got := d.String(); got != `bold italic bold 20px "Arial"` {
		t.Errorf("after second Bold: %q", got)
	}
}

func TestFontDescriptorChaining(t *testing.T) {
	got := scene.NewFontDescriptor("Arial", scene.Px(16)).Bold().Italic().String()
	if got != `italic bold 16px "Arial"` {
		t.Errorf("chained = %q", got)
	}
}

func TestParseFontString(t *testing.T) {
	pf := scene.ParseFontString(`italic bold 20px "Arial","sans-serif"`)

	if !pf.Bold || !pf.Italic {
		t.Errorf("flags = (bold=%v, italic=%v), want both set", pf.Bold, pf.Italic)
	}
	if pf.Size != 20 || pf.Unit != "px" {
		t.Errorf("size = %v%s, want 20px", pf.Size, pf.Unit)
	}
	if want := []string{"Arial", "sans-serif"}; !reflect.DeepEqual(pf.Families, want) {
		t.Errorf("families = %v, want %v", pf.Families, want)
	}
}

func TestParseFontStringPlain(t *testing.T) {
	pf := scene.ParseFontString(`13px "monospace"`)
	if pf.Bold || pf.Italic {
		t.Errorf("flags = (bold=%v, italic=%v), want neither", pf.Bold, pf.Italic)
	}
	if pf.Size != 13 {
		t.Errorf("size = %v, want 13", pf.Size)
	}
}

func TestParseFontStringRoundTrip(t *testing.T) {
	d := scene.NewFontDescriptor("Courier New, monospace", scene.Px(11)).Bold()
	pf := scene.ParseFontString(d.String())

	if !pf.Bold || pf.Italic {
		t.Errorf("flags = (bold=%v, italic=%v)", pf.Bold, pf.Italic)
	}
	if want := []string{"Courier New", "monospace"}; !reflect.DeepEqual(pf.Families, want) {
		t.Errorf("families = %v, want %v", pf.Families, want)
	}
}
