package canvas

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

func TestImageFillRect(t *testing.T) {
	c := NewImage(100, 100)
	c.SetPaint(color.NRGBA{R: 255, A: 255})
	c.FillRect(geom.NewRect(10, 10, 50, 50))

	r, g, b, a := c.Image().At(30, 30).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("Expected pure red at (30,30), got rgba(%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}

	// Outside the rect stays untouched (transparent).
	if _, _, _, a := c.Image().At(80, 80).RGBA(); a != 0 {
		t.Errorf("Expected untouched pixel at (80,80), got alpha %d", a)
	}
}

func TestImageClipConfinesDrawing(t *testing.T) {
	c := NewImage(100, 100)
	c.Push()
	c.Clip(geom.NewRect(0, 0, 40, 40))
	c.SetPaint(color.NRGBA{B: 255, A: 255})
	c.FillRect(geom.NewRect(0, 0, 100, 100))
	c.Pop()

	if _, _, _, a := c.Image().At(20, 20).RGBA(); a == 0 {
		t.Error("Expected filled pixel inside clip")
	}
	if _, _, _, a := c.Image().At(70, 70).RGBA(); a != 0 {
		t.Error("Expected pixel outside clip to be untouched")
	}

	// After Pop the full surface is drawable again.
	c.SetPaint(color.NRGBA{G: 255, A: 255})
	c.FillRect(geom.NewRect(60, 60, 20, 20))
	if _, _, _, a := c.Image().At(70, 70).RGBA(); a == 0 {
		t.Error("Expected clip to be restored after Pop")
	}
}

func TestImageEncodePNG(t *testing.T) {
	c := NewImage(10, 10)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected PNG bytes")
	}
	// PNG signature.
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("Output does not start with PNG signature")
	}
}

func TestSVGEmitsPrimitives(t *testing.T) {
	var buf bytes.Buffer
	c := NewSVG(&buf, 200, 100)
	c.SetPaint(color.NRGBA{R: 255, A: 255})
	c.SetStroke(paint.Stroke{Width: 2, Dash: []float64{4, 2}})
	c.StrokeLine(0, 50, 200, 50)
	c.FillRect(geom.NewRect(10, 10, 20, 20))
	c.DrawString("hello", 100, 20, geom.AnchorCenter)
	c.End()

	out := buf.String()
	for _, want := range []string{
		"<line", "<rect", "hello",
		"stroke:#ff0000", "stroke-dasharray:4,2",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestSVGClipOpensAndClosesGroups(t *testing.T) {
	var buf bytes.Buffer
	c := NewSVG(&buf, 100, 100)
	c.Push()
	c.Clip(geom.NewRect(10, 10, 50, 50))
	c.StrokeLine(0, 0, 100, 100)
	c.Pop()
	c.End()

	out := buf.String()
	if !strings.Contains(out, "<clipPath") {
		t.Error("Expected a clipPath definition")
	}
	if strings.Count(out, "<g ") != strings.Count(out, "</g>") {
		t.Errorf("Unbalanced groups in SVG output:\n%s", out)
	}
}

func TestCSSColor(t *testing.T) {
	cases := []struct {
		p    paint.Paint
		want string
	}{
		{color.NRGBA{R: 255, A: 255}, "#ff0000"},
		{color.Black, "#000000"},
		{nil, "none"},
		{color.NRGBA{A: 0}, "none"},
	}
	for _, c := range cases {
		if got := cssColor(c.p); got != c.want {
			t.Errorf("cssColor(%v) = %q, want %q", c.p, got, c.want)
		}
	}
}
