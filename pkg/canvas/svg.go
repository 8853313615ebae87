package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"

	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

// SVG is the vector Canvas backend, streaming SVG elements to a writer.
// Call End when drawing is complete.
type SVG struct {
	c      *svg.SVG
	paint  paint.Paint
	stroke paint.Stroke
	font   paint.Font
	clip   geom.Rect
	stack  []svgState
	groups int
	clipID int
}

type svgState struct {
	paint  paint.Paint
	stroke paint.Stroke
	font   paint.Font
	clip   geom.Rect
	groups int
}

var _ Canvas = (*SVG)(nil)

// NewSVG creates a vector canvas of the given size writing to w.
func NewSVG(w io.Writer, width, height int) *SVG {
	c := svg.New(w)
	c.Start(width, height)
	return &SVG{
		c:      c,
		paint:  color.Black,
		stroke: paint.SolidStroke(1),
		font:   paint.DefaultFont,
		clip:   geom.NewRect(0, 0, float64(width), float64(height)),
	}
}

// Push implements Canvas.
func (s *SVG) Push() {
	s.stack = append(s.stack, svgState{
		paint:  s.paint,
		stroke: s.stroke.Clone(),
		font:   s.font,
		clip:   s.clip,
		groups: s.groups,
	})
	s.groups = 0
}

// Pop implements Canvas. Groups opened since the matching Push (one per
// Clip call) are closed.
func (s *SVG) Pop() {
	if len(s.stack) == 0 {
		return
	}
	for i := 0; i < s.groups; i++ {
		s.c.Gend()
	}
	st := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.paint = st.paint
	s.stroke = st.stroke
	s.font = st.font
	s.clip = st.clip
	s.groups = st.groups
}

// Clip implements Canvas. The clip is emitted as a clipPath definition and
// an enclosing group referencing it.
func (s *SVG) Clip(r geom.Rect) {
	s.clip = s.clip.Intersect(r)
	s.clipID++
	id := fmt.Sprintf("clip%d", s.clipID)
	s.c.Def()
	s.c.ClipPath(`id="` + id + `"`)
	s.c.Rect(round(s.clip.X), round(s.clip.Y), round(s.clip.W), round(s.clip.H))
	s.c.ClipEnd()
	s.c.DefEnd()
	s.c.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	s.groups++
}

// SetPaint implements Canvas.
func (s *SVG) SetPaint(p paint.Paint) {
	if p == nil {
		return
	}
	s.paint = p
}

// SetStroke implements Canvas.
func (s *SVG) SetStroke(st paint.Stroke) {
	s.stroke = st.Clone()
}

// SetFont implements Canvas.
func (s *SVG) SetFont(f paint.Font) {
	s.font = f
}

// StrokeLine implements Canvas.
func (s *SVG) StrokeLine(x0, y0, x1, y1 float64) {
	s.c.Line(round(x0), round(y0), round(x1), round(y1), s.strokeStyle())
}

// FillRect implements Canvas.
func (s *SVG) FillRect(r geom.Rect) {
	style := fmt.Sprintf("fill:%s", cssColor(s.paint))
	s.c.Rect(round(r.X), round(r.Y), round(r.W), round(r.H), style)
}

// StrokeRect implements Canvas.
func (s *SVG) StrokeRect(r geom.Rect) {
	s.c.Rect(round(r.X), round(r.Y), round(r.W), round(r.H), s.strokeStyle())
}

// DrawString implements Canvas.
func (s *SVG) DrawString(str string, x, y float64, anchor geom.Anchor) {
	ax, ay := anchor.Factors()
	var ta string
	switch ax {
	case 0:
		ta = "start"
	case 1:
		ta = "end"
	default:
		ta = "middle"
	}
	var baseline string
	switch ay {
	case 1:
		baseline = "hanging"
	case 0:
		baseline = "auto"
	default:
		baseline = "middle"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "font-family:%s;font-size:%gpx;fill:%s;text-anchor:%s;dominant-baseline:%s",
		s.font.Family, s.font.Size, cssColor(s.paint), ta, baseline)
	if s.font.Bold {
		b.WriteString(";font-weight:bold")
	}
	if s.font.Italic {
		b.WriteString(";font-style:italic")
	}
	s.c.Text(round(x), round(y), str, b.String())
}

// StringSize implements Canvas. SVG has no text metrics at generation time,
// so the size is estimated from the font size.
func (s *SVG) StringSize(str string) (w, h float64) {
	n := float64(utf8.RuneCountInString(str))
	return n * s.font.Size * 0.6, s.font.Size
}

// End closes any open groups and finishes the SVG document.
func (s *SVG) End() {
	for len(s.stack) > 0 {
		s.Pop()
	}
	for i := 0; i < s.groups; i++ {
		s.c.Gend()
	}
	s.groups = 0
	s.c.End()
}

func (s *SVG) strokeStyle() string {
	var b strings.Builder
	width := s.stroke.Width
	if width <= 0 {
		width = 1
	}
	fmt.Fprintf(&b, "stroke:%s;stroke-width:%g;fill:none", cssColor(s.paint), width)
	if len(s.stroke.Dash) > 0 {
		b.WriteString(";stroke-dasharray:")
		for i, d := range s.stroke.Dash {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%g", d)
		}
	}
	return b.String()
}

// cssColor renders a paint as a CSS color value.
func cssColor(p paint.Paint) string {
	if p == nil {
		return "none"
	}
	r, g, b, a := p.RGBA()
	if a == 0 {
		return "none"
	}
	// Un-premultiply to 8-bit channels.
	r8 := uint8((r * 0xffff / a) >> 8)
	g8 := uint8((g * 0xffff / a) >> 8)
	b8 := uint8((b * 0xffff / a) >> 8)
	if a == 0xffff {
		return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
	}
	alpha := float64(a) / 0xffff
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r8, g8, b8, trimFloat(alpha))
}

func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}

func round(f float64) int {
	return int(math.Round(f))
}
