package chart

import (
	"bytes"
	"strings"
	"testing"

	"obesitydash/domain/chart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSpec() chart.Spec {
	return chart.Spec{
		Title:      chart.Title,
		XLabel:     "Gender",
		YLabel:     "count",
		Categories: []string{"Male", "Female"},
		Series: []chart.Series{
			{Name: "Normal", Counts: []int{1, 0}},
			{Name: "Overweight", Counts: []int{1, 2}},
		},
	}
}

func emptySpec() chart.Spec {
	return chart.Spec{Title: chart.Title, XLabel: "Gender", YLabel: "count"}
}

func TestSVGRenderer_Bars(t *testing.T) {
	r := NewSVGRenderer(640, 400)
	var buf bytes.Buffer

	require.NoError(t, r.Render(&buf, scenarioSpec()))

	out := buf.String()
	assert.Contains(t, out, "<svg", "output should be an SVG document")
	assert.Contains(t, out, chart.Title)
	assert.Contains(t, out, "Male")
	assert.Contains(t, out, "Female")
	assert.Equal(t, "image/svg+xml", r.ContentType())
}

func TestSVGRenderer_EscapesDataLabels(t *testing.T) {
	r := NewSVGRenderer(640, 400)
	spec := chart.Spec{
		Title:      chart.Title,
		XLabel:     "Gender",
		YLabel:     "count",
		Categories: []string{"<script>alert(1)</script>"},
		Series:     []chart.Series{{Name: "A&B<i>", Counts: []int{2}}},
	}
	var buf bytes.Buffer

	require.NoError(t, r.Render(&buf, spec))

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<i>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestSVGRenderer_EmptySpecIsPlaceholder(t *testing.T) {
	r := NewSVGRenderer(640, 400)
	var buf bytes.Buffer

	require.NoError(t, r.Render(&buf, emptySpec()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, chart.Title)
	assert.Contains(t, out, EmptyMessage)
	assert.Contains(t, out, `width="640"`)
}

func TestPNGRenderer(t *testing.T) {
	r := NewPNGRenderer(640, 400)

	for name, spec := range map[string]chart.Spec{"bars": scenarioSpec(), "empty": emptySpec()} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, spec))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "output should be a PNG")
		})
	}
	assert.Equal(t, "image/png", r.ContentType())
}

func TestHexColor(t *testing.T) {
	c := hexColor("636efa")
	red, green, blue, alpha := c.RGBA()
	assert.Equal(t, uint32(0x63), red>>8)
	assert.Equal(t, uint32(0x6e), green>>8)
	assert.Equal(t, uint32(0xfa), blue>>8)
	assert.Equal(t, uint32(0xff), alpha>>8)

	gr, gg, gb, _ := hexColor("zz").RGBA()
	assert.Equal(t, gr, gg)
	assert.Equal(t, gg, gb)
}
