package canvas

import (
	"fmt"
	"image"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

// Image is the raster Canvas backend, drawing into an in-memory RGBA image
// via a gg context.
type Image struct {
	dc     *gg.Context
	stroke paint.Stroke
	clip   geom.Rect
	clips  []geom.Rect
}

var _ Canvas = (*Image)(nil)

// NewImage creates a raster canvas of the given pixel size with the default
// font face active.
func NewImage(width, height int) *Image {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &Image{
		dc:   dc,
		clip: geom.NewRect(0, 0, float64(width), float64(height)),
	}
}

// Push implements Canvas.
func (c *Image) Push() {
	c.dc.Push()
	c.clips = append(c.clips, c.clip)
}

// Pop implements Canvas.
func (c *Image) Pop() {
	if len(c.clips) == 0 {
		return
	}
	c.dc.Pop()
	c.clip = c.clips[len(c.clips)-1]
	c.clips = c.clips[:len(c.clips)-1]
	// gg's state stack does not round-trip the clip mask reliably, so the
	// clip is reapplied from our own stack.
	c.applyClip()
}

// Clip implements Canvas.
func (c *Image) Clip(r geom.Rect) {
	c.clip = c.clip.Intersect(r)
	c.applyClip()
}

func (c *Image) applyClip() {
	c.dc.ResetClip()
	if c.clip.IsEmpty() {
		// Collapse to a degenerate region so nothing draws.
		c.dc.DrawRectangle(0, 0, 0, 0)
		c.dc.Clip()
		return
	}
	c.dc.DrawRectangle(c.clip.X, c.clip.Y, c.clip.W, c.clip.H)
	c.dc.Clip()
}

// SetPaint implements Canvas.
func (c *Image) SetPaint(p paint.Paint) {
	if p == nil {
		return
	}
	c.dc.SetColor(p)
}

// SetStroke implements Canvas.
func (c *Image) SetStroke(s paint.Stroke) {
	c.stroke = s.Clone()
	width := s.Width
	if width <= 0 {
		width = 1
	}
	c.dc.SetLineWidth(width)
	c.dc.SetDash(s.Dash...)
	c.dc.SetDashOffset(s.DashPhase)
}

// SetFont implements Canvas. Fonts with a file path are loaded from disk;
// anything else falls back to the built-in face.
func (c *Image) SetFont(f paint.Font) {
	if f.Path != "" {
		if err := c.dc.LoadFontFace(f.Path, f.Size); err == nil {
			return
		}
	}
	c.dc.SetFontFace(basicfont.Face7x13)
}

// StrokeLine implements Canvas.
func (c *Image) StrokeLine(x0, y0, x1, y1 float64) {
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
}

// FillRect implements Canvas.
func (c *Image) FillRect(r geom.Rect) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

// StrokeRect implements Canvas.
func (c *Image) StrokeRect(r geom.Rect) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Stroke()
}

// DrawString implements Canvas.
func (c *Image) DrawString(s string, x, y float64, anchor geom.Anchor) {
	ax, ay := anchor.Factors()
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// StringSize implements Canvas.
func (c *Image) StringSize(s string) (w, h float64) {
	return c.dc.MeasureString(s)
}

// Image returns the backing image.
func (c *Image) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas contents as PNG.
func (c *Image) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding canvas to PNG: %w", err)
	}
	return nil
}

// SavePNG writes the canvas contents to a PNG file.
func (c *Image) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving canvas to %s: %w", path, err)
	}
	return nil
}
