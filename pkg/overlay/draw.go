package overlay

import (
	"github.com/plotglass/plotglass/pkg/canvas"
	"github.com/plotglass/plotglass/pkg/geom"
)

// drawVerticalCrosshair draws a crosshair as a vertical line at the screen
// x coordinate px, spanning the height of the data area. Lines that fall
// outside the area are skipped entirely.
func drawVerticalCrosshair(cv canvas.Canvas, area geom.Rect, px float64, c *Crosshair) {
	if px < area.MinX() || px > area.MaxX() {
		return
	}
	cv.SetPaint(c.LinePaint())
	cv.SetStroke(c.LineStroke())
	cv.StrokeLine(px, area.MinY(), px, area.MaxY())

	if !c.LabelVisible() {
		return
	}
	pt := verticalLabelPoint(area, px, c)
	drawLabel(cv, c, pt)
}

// drawHorizontalCrosshair draws a crosshair as a horizontal line at the
// screen y coordinate py, spanning the width of the data area.
func drawHorizontalCrosshair(cv canvas.Canvas, area geom.Rect, py float64, c *Crosshair) {
	if py < area.MinY() || py > area.MaxY() {
		return
	}
	cv.SetPaint(c.LinePaint())
	cv.SetStroke(c.LineStroke())
	cv.StrokeLine(area.MinX(), py, area.MaxX(), py)

	if !c.LabelVisible() {
		return
	}
	pt := horizontalLabelPoint(area, py, c)
	drawLabel(cv, c, pt)
}

// verticalLabelPoint positions the label anchor point next to a vertical
// line. The anchor's horizontal part picks the side of the line, its
// vertical part the position along the line.
func verticalLabelPoint(area geom.Rect, px float64, c *Crosshair) geom.Point {
	xOff, yOff := c.LabelOffsets()
	ax, ay := c.LabelAnchor().Factors()

	x := px
	switch ax {
	case 0:
		x = px + xOff
	case 1:
		x = px - xOff
	}

	var y float64
	switch ay {
	case 1:
		y = area.MinY() + yOff
	case 0:
		y = area.MaxY() - yOff
	default:
		y = area.CenterY()
	}
	return geom.Point{X: x, Y: y}
}

// horizontalLabelPoint positions the label anchor point next to a
// horizontal line. The anchor's vertical part picks the side of the line,
// its horizontal part the position along it.
func horizontalLabelPoint(area geom.Rect, py float64, c *Crosshair) geom.Point {
	xOff, yOff := c.LabelOffsets()
	ax, ay := c.LabelAnchor().Factors()

	var x float64
	switch ax {
	case 0:
		x = area.MinX() + xOff
	case 1:
		x = area.MaxX() - xOff
	default:
		x = area.CenterX()
	}

	y := py
	switch ay {
	case 1:
		y = py + yOff
	case 0:
		y = py - yOff
	}
	return geom.Point{X: x, Y: y}
}

// drawLabel renders the crosshair's formatted value at the anchor point,
// filling the label background first when one is configured.
func drawLabel(cv canvas.Canvas, c *Crosshair, pt geom.Point) {
	text := c.Label()
	cv.SetFont(c.LabelFont())

	if bg := c.LabelBackground(); bg != nil {
		w, h := cv.StringSize(text)
		ax, ay := c.LabelAnchor().Factors()
		const pad = 2
		box := geom.Rect{
			X: pt.X - ax*w - pad,
			Y: pt.Y - (1-ay)*h - pad,
			W: w + 2*pad,
			H: h + 2*pad,
		}
		cv.SetPaint(bg)
		cv.FillRect(box)
	}

	cv.SetPaint(c.LabelPaint())
	cv.DrawString(text, pt.X, pt.Y, c.LabelAnchor())
}
