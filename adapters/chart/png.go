package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"obesitydash/domain/chart"
)

// PNGRenderer draws the stacked bar chart as PNG with gonum/plot.
type PNGRenderer struct {
	Width  int
	Height int
}

// NewPNGRenderer creates a PNG renderer with the given pixel size
func NewPNGRenderer(width, height int) *PNGRenderer {
	return &PNGRenderer{Width: width, Height: height}
}

// ContentType implements ports.ChartRenderer
func (r *PNGRenderer) ContentType() string {
	return "image/png"
}

// Render implements ports.ChartRenderer. An empty spec yields an empty titled plot.
func (r *PNGRenderer) Render(w io.Writer, spec chart.Spec) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Y.Min = 0
	p.Legend.Top = true

	if spec.Empty() {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
		p.X.Label.Text = EmptyMessage
	} else {
		barWidth := vg.Points(40)
		var below *plotter.BarChart
		for si, series := range spec.Series {
			values := make(plotter.Values, len(series.Counts))
			for i, c := range series.Counts {
				values[i] = float64(c)
			}
			bars, err := plotter.NewBarChart(values, barWidth)
			if err != nil {
				return fmt.Errorf("failed to build bars for %s: %w", series.Name, err)
			}
			bars.Color = hexColor(chart.SeriesColor(si))
			bars.LineStyle.Width = vg.Length(0)
			if below != nil {
				bars.StackOn(below)
			}
			p.Add(bars)
			p.Legend.Add(series.Name, bars)
			below = bars
		}
		p.NominalX(spec.Categories...)
		// headroom so the top-anchored legend does not cover the tallest bar
		p.Y.Max = math.Ceil(float64(spec.MaxCategoryTotal()) * 1.25)
	}

	wt, err := p.WriterTo(pixels(r.Width), pixels(r.Height), "png")
	if err != nil {
		return fmt.Errorf("failed to prepare PNG chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write PNG chart: %w", err)
	}
	return nil
}

// pixels converts a pixel size to a plot length at the 96 DPI used by vgimg.
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}

func hexColor(hex string) color.Color {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color.Gray{Y: 0x80}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
