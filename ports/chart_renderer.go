package ports

import (
	"io"

	"obesitydash/domain/chart"
)

// ChartRenderer draws a chart spec in one output format.
type ChartRenderer interface {
	Render(w io.Writer, spec chart.Spec) error

	// ContentType is the MIME type of the rendered output
	ContentType() string
}
