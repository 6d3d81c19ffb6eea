// Package chart renders chart specs with third-party plotting libraries.
package chart

import (
	"fmt"
	"html"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"obesitydash/domain/chart"
)

// EmptyMessage is drawn in place of bars when no rows match.
const EmptyMessage = "No rows match the current filters"

// SVGRenderer draws the stacked bar chart as SVG with go-chart.
type SVGRenderer struct {
	Width  int
	Height int
}

// NewSVGRenderer creates an SVG renderer with the given pixel size
func NewSVGRenderer(width, height int) *SVGRenderer {
	return &SVGRenderer{Width: width, Height: height}
}

// ContentType implements ports.ChartRenderer
func (r *SVGRenderer) ContentType() string {
	return "image/svg+xml"
}

// Render implements ports.ChartRenderer. One stacked bar per category, one segment per
// series with a non-zero count. go-chart writes text nodes verbatim, so every label taken
// from the data is escaped here.
func (r *SVGRenderer) Render(w io.Writer, spec chart.Spec) error {
	if spec.Empty() {
		return r.renderPlaceholder(w, spec.Title)
	}

	bars := make([]gochart.StackedBar, len(spec.Categories))
	for ci, category := range spec.Categories {
		values := make([]gochart.Value, 0, len(spec.Series))
		for si, series := range spec.Series {
			count := series.Counts[ci]
			if count == 0 {
				continue
			}
			fill := drawing.ColorFromHex(chart.SeriesColor(si))
			values = append(values, gochart.Value{
				Label: html.EscapeString(fmt.Sprintf("%s: %d", series.Name, count)),
				Value: float64(count),
				Style: gochart.Style{
					FillColor:   fill,
					StrokeColor: fill,
					StrokeWidth: 1,
				},
			})
		}
		bars[ci] = gochart.StackedBar{Name: html.EscapeString(category), Values: values}
	}

	sbc := gochart.StackedBarChart{
		Title:  html.EscapeString(spec.Title),
		Width:  r.Width,
		Height: r.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		BarSpacing: 48,
		Bars:       bars,
	}
	if err := sbc.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render SVG chart: %w", err)
	}
	return nil
}

// renderPlaceholder writes a titled, bar-less SVG; go-chart refuses to draw zero bars.
func (r *SVGRenderer) renderPlaceholder(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="32" text-anchor="middle" font-family="sans-serif" font-size="18">%s</text>`+
			`<line x1="48" y1="%d" x2="%d" y2="%d" stroke="#999999"/>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#666666">%s</text>`+
			`</svg>`,
		r.Width, r.Height, r.Width, r.Height,
		html.EscapeString(title),
		r.Height-40, r.Width-16, r.Height-40,
		html.EscapeString(EmptyMessage),
	)
	return err
}
