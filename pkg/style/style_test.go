package style

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#00FF7f", color.NRGBA{G: 255, B: 127, A: 255}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", c.in, err)
			continue
		}
		if !paint.Equal(got, c.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"ff0000", "#ff00", "#gg0000", "#ff00001"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}

	// Empty means "no paint", not an error.
	p, err := ParseColor("")
	if err != nil || p != nil {
		t.Errorf("ParseColor(\"\") = %v, %v; want nil, nil", p, err)
	}
}

func TestParseThemeOverridesDefaults(t *testing.T) {
	theme, err := Parse([]byte(`
title:
  text: Quarterly Revenue
  font_size: 18
crosshair:
  color: "#00ff00"
  width: 2
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if theme.Title.Text != "Quarterly Revenue" {
		t.Errorf("Title text = %q", theme.Title.Text)
	}
	if theme.Title.FontSize != 18 {
		t.Errorf("Font size = %v", theme.Title.FontSize)
	}
	// Untouched fields keep defaults.
	if theme.Crosshair.LabelFormat != Default().Crosshair.LabelFormat {
		t.Errorf("Label format = %q, want default", theme.Crosshair.LabelFormat)
	}
	if theme.Crosshair.Width != 2 {
		t.Errorf("Width = %v", theme.Crosshair.Width)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("title:\n  txet: oops\n"))
	if err == nil {
		t.Fatal("Expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "txet") {
		t.Errorf("Error should name the unknown field, got: %v", err)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse([]byte("crosshair:\n  color: red\n"))
	if err == nil {
		t.Fatal("Expected error for non-hex color")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := "title:\n  text: From Disk\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if theme.Title.Text != "From Disk" {
		t.Errorf("Title text = %q", theme.Title.Text)
	}
}

func TestThemeBuildsStyledCrosshair(t *testing.T) {
	theme := Default()
	theme.Crosshair.Color = "#0000ff"
	theme.Crosshair.Width = 3
	theme.Crosshair.Label = true
	theme.Crosshair.LabelFormat = "%.1f"

	c := theme.NewCrosshair(2.5)

	if c.Value() != 2.5 {
		t.Errorf("Value = %v", c.Value())
	}
	if !paint.Equal(c.LinePaint(), color.NRGBA{B: 255, A: 255}) {
		t.Errorf("Line paint = %v", c.LinePaint())
	}
	if c.LineStroke().Width != 3 {
		t.Errorf("Stroke width = %v", c.LineStroke().Width)
	}
	if c.Label() != "2.5" {
		t.Errorf("Label = %q", c.Label())
	}
}

func TestThemeBuildsStyledTitle(t *testing.T) {
	theme := Default()
	theme.Title.Text = "Styled"
	theme.Title.Background = "#ffffff"

	tt := theme.NewTitle()

	if tt.Text() != "Styled" {
		t.Errorf("Text = %q", tt.Text())
	}
	if tt.Position() != geom.EdgeTop {
		t.Errorf("Position = %v", tt.Position())
	}
	if !paint.Equal(tt.BackgroundPaint(), color.White) {
		t.Errorf("Background = %v", tt.BackgroundPaint())
	}
}
