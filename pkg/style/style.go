// Package style loads chart annotation themes from YAML files and applies
// them to crosshairs and titles. A theme file controls the colors, stroke,
// and fonts used by the annotation components without recompiling.
package style

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plotglass/plotglass/pkg/overlay"
	"github.com/plotglass/plotglass/pkg/paint"
	"github.com/plotglass/plotglass/pkg/title"
)

// Theme is the root of a theme file.
type Theme struct {
	Title     TitleTheme     `yaml:"title"`
	Crosshair CrosshairTheme `yaml:"crosshair"`
}

// TitleTheme styles the chart title block.
type TitleTheme struct {
	Text       string  `yaml:"text"`
	FontFamily string  `yaml:"font_family"`
	FontSize   float64 `yaml:"font_size"`
	Bold       bool    `yaml:"bold"`
	Color      string  `yaml:"color"`
	Background string  `yaml:"background"`
}

// CrosshairTheme styles crosshair lines and labels.
type CrosshairTheme struct {
	Color        string    `yaml:"color"`
	Width        float64   `yaml:"width"`
	Dash         []float64 `yaml:"dash"`
	Label        bool      `yaml:"label"`
	LabelFormat  string    `yaml:"label_format"`
	LabelColor   string    `yaml:"label_color"`
	LabelBackground string `yaml:"label_background"`
}

// Default returns the theme used when no file is supplied.
func Default() Theme {
	return Theme{
		Title: TitleTheme{
			Text:       "Chart",
			FontFamily: "sans-serif",
			FontSize:   14,
			Bold:       true,
			Color:      "#1a1a2e",
		},
		Crosshair: CrosshairTheme{
			Color:       "#ff5555",
			Width:       1,
			Dash:        []float64{4, 2},
			Label:       true,
			LabelFormat: "%.2f",
			LabelColor:  "#1a1a2e",
		},
	}
}

// Load reads a theme from a YAML file. Unknown fields are rejected so typos
// in theme files fail loudly.
func Load(path string) (Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a theme from YAML bytes. Fields not present keep their
// default values; empty input yields the default theme.
func Parse(b []byte) (Theme, error) {
	theme := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&theme); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}
	if err := theme.validate(); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

func (t Theme) validate() error {
	for name, hex := range map[string]string{
		"title.color":                t.Title.Color,
		"title.background":           t.Title.Background,
		"crosshair.color":            t.Crosshair.Color,
		"crosshair.label_color":      t.Crosshair.LabelColor,
		"crosshair.label_background": t.Crosshair.LabelBackground,
	} {
		if hex == "" {
			continue
		}
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if t.Crosshair.Width < 0 {
		return fmt.Errorf("crosshair.width: negative width %g", t.Crosshair.Width)
	}
	return nil
}

// NewCrosshair builds a crosshair at the given value styled by the theme.
func (t Theme) NewCrosshair(value float64) *overlay.Crosshair {
	c := overlay.NewCrosshair(value)
	if p, err := ParseColor(t.Crosshair.Color); err == nil && p != nil {
		c.SetLinePaint(p)
	}
	c.SetLineStroke(paint.Stroke{Width: t.Crosshair.Width, Dash: t.Crosshair.Dash})
	c.SetLabelVisible(t.Crosshair.Label)
	if t.Crosshair.LabelFormat != "" {
		c.SetLabelFormat(t.Crosshair.LabelFormat)
	}
	if p, err := ParseColor(t.Crosshair.LabelColor); err == nil && p != nil {
		c.SetLabelPaint(p)
	}
	if t.Crosshair.LabelBackground != "" {
		if p, err := ParseColor(t.Crosshair.LabelBackground); err == nil {
			c.SetLabelBackground(p)
		}
	}
	return c
}

// NewTitle builds a title block styled by the theme.
func (t Theme) NewTitle() *title.TextTitle {
	font := paint.Font{
		Family: t.Title.FontFamily,
		Size:   t.Title.FontSize,
		Bold:   t.Title.Bold,
	}
	fg := paint.Paint(color.Black)
	if p, err := ParseColor(t.Title.Color); err == nil && p != nil {
		fg = p
	}
	var bg paint.Paint
	if p, err := ParseColor(t.Title.Background); err == nil {
		bg = p
	}
	style := title.NewTextStyleWithBackground(font, fg, bg)
	tt := title.NewStyledTextTitle(t.Title.Text, style, title.DefaultPosition())
	return tt
}

// ParseColor parses a #RRGGBB or #RRGGBBAA hex color. An empty string
// parses to nil (no paint).
func ParseColor(s string) (paint.Paint, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) == 0 || s[0] != '#' {
		return nil, fmt.Errorf("invalid color %q: expected leading '#'", s)
	}
	hx := s[1:]
	if len(hx) != 6 && len(hx) != 8 {
		return nil, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
	var v uint64
	for _, r := range hx {
		d, ok := hexDigit(r)
		if !ok {
			return nil, fmt.Errorf("invalid color %q: bad hex digit %q", s, r)
		}
		v = v<<4 | uint64(d)
	}
	c := color.NRGBA{A: 255}
	if len(hx) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

func hexDigit(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, true
	}
	return 0, false
}
