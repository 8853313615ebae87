package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/plotglass/plotglass/pkg/axis"
	"github.com/plotglass/plotglass/pkg/canvas"
	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/overlay"
	"github.com/plotglass/plotglass/pkg/paint"
	"github.com/plotglass/plotglass/pkg/plot"
	"github.com/plotglass/plotglass/pkg/style"
)

// renderConfig holds everything needed to produce one render of the demo
// chart.
type renderConfig struct {
	width, height int
	outDir        string
	theme         style.Theme
	crossX        float64
	crossY        float64
	horizontal    bool
}

const (
	titleBand = 36
	margin    = 20
)

// renderAll writes chart.png and chart.svg into the output directory,
// drawing both backends concurrently.
func renderAll(cfg renderConfig) error {
	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error { return renderPNG(cfg) })
	g.Go(func() error { return renderSVG(cfg) })
	return g.Wait()
}

func renderPNG(cfg renderConfig) error {
	cv := canvas.NewImage(cfg.width, cfg.height)
	drawChart(cv, cfg)
	return cv.SavePNG(filepath.Join(cfg.outDir, "chart.png"))
}

func renderSVG(cfg renderConfig) error {
	path := filepath.Join(cfg.outDir, "chart.svg")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cv := canvas.NewSVG(f, cfg.width, cfg.height)
	drawChart(cv, cfg)
	cv.End()
	return nil
}

// drawChart renders the demo sine chart with a themed title and crosshair
// overlay into any canvas backend.
func drawChart(cv canvas.Canvas, cfg renderConfig) {
	full := geom.NewRect(0, 0, float64(cfg.width), float64(cfg.height))

	cv.SetPaint(color.White)
	cv.FillRect(full)

	// Title band across the top.
	title := cfg.theme.NewTitle()
	title.Draw(cv, geom.NewRect(0, 0, full.W, titleBand))

	dataArea := geom.NewRect(margin, titleBand, full.W-2*margin, full.H-titleBand-margin)

	xAxis := axis.NewLinear(0, 10)
	yAxis := axis.NewLinear(-1.2, 1.2)
	p := plot.NewXYPlot(xAxis, yAxis)
	if cfg.horizontal {
		p.SetOrientation(plot.Horizontal)
	}

	drawFrame(cv, dataArea, xAxis, yAxis, p)
	drawSeries(cv, dataArea, xAxis, yAxis, p)

	ov := overlay.NewCrosshairOverlay()
	ov.AddDomainCrosshair(cfg.theme.NewCrosshair(cfg.crossX))
	ov.AddRangeCrosshair(cfg.theme.NewCrosshair(cfg.crossY))
	ov.PaintOverlay(cv, plot.NewFixedPanel(dataArea, p))
}

// drawFrame strokes the data area border and a light grid on the axis
// ticks.
func drawFrame(cv canvas.Canvas, area geom.Rect, xAxis, yAxis *axis.Linear, p plot.Plot) {
	cv.SetPaint(color.NRGBA{R: 0xdd, G: 0xdd, B: 0xe4, A: 255})
	cv.SetStroke(paint.SolidStroke(1))
	for _, v := range xAxis.Ticks(11) {
		px := xAxis.ValueToPixel(v, area, p.DomainAxisEdge())
		if p.DomainAxisEdge().IsTopOrBottom() {
			cv.StrokeLine(px, area.MinY(), px, area.MaxY())
		} else {
			cv.StrokeLine(area.MinX(), px, area.MaxX(), px)
		}
	}
	for _, v := range yAxis.Ticks(7) {
		px := yAxis.ValueToPixel(v, area, p.RangeAxisEdge())
		if p.RangeAxisEdge().IsTopOrBottom() {
			cv.StrokeLine(px, area.MinY(), px, area.MaxY())
		} else {
			cv.StrokeLine(area.MinX(), px, area.MaxX(), px)
		}
	}

	cv.SetPaint(color.NRGBA{R: 0x44, G: 0x47, B: 0x5a, A: 255})
	cv.StrokeRect(area)
}

// drawSeries plots sin(x) over the domain as connected segments.
func drawSeries(cv canvas.Canvas, area geom.Rect, xAxis, yAxis *axis.Linear, p plot.Plot) {
	cv.SetPaint(color.NRGBA{R: 0x3b, G: 0x6e, B: 0xc5, A: 255})
	cv.SetStroke(paint.SolidStroke(1.5))

	const steps = 200
	var prev geom.Point
	for i := 0; i <= steps; i++ {
		x := xAxis.Lower + float64(i)/steps*(xAxis.Upper-xAxis.Lower)
		y := math.Sin(x)

		var pt geom.Point
		if p.Orientation() == plot.Vertical {
			pt = geom.Point{
				X: xAxis.ValueToPixel(x, area, p.DomainAxisEdge()),
				Y: yAxis.ValueToPixel(y, area, p.RangeAxisEdge()),
			}
		} else {
			pt = geom.Point{
				X: yAxis.ValueToPixel(y, area, p.RangeAxisEdge()),
				Y: xAxis.ValueToPixel(x, area, p.DomainAxisEdge()),
			}
		}
		if i > 0 {
			cv.StrokeLine(prev.X, prev.Y, pt.X, pt.Y)
		}
		prev = pt
	}
}
