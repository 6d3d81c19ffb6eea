package ui

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"obesitydash/adapters/excel"
	"obesitydash/app"
	"obesitydash/domain/chart"
	"obesitydash/domain/core"
	"obesitydash/internal/errors"
	"obesitydash/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type legendEntry struct {
	Name  string
	Color string
	Total int
}

type indexPage struct {
	Render   *app.Render
	ChartSVG template.HTML
	Legend   []legendEntry
	Query    template.URL
	Notes    template.HTML
	HasPNG   bool
}

type errorPage struct {
	Status  int
	Code    string
	Message string
}

// render re-runs the pipeline for the request's widget state
func (s *Server) render(c *gin.Context) (*app.Render, error) {
	sel, err := app.ParseSelection(c.Request.URL.Query())
	if err != nil {
		return nil, err
	}
	render, err := s.service.Render(c.Request.Context(), sel)
	if err != nil {
		return nil, err
	}
	c.Header("X-Render-ID", render.ID.String())
	return render, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	render, err := s.render(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	var svg bytes.Buffer
	if err := s.svg.Render(&svg, render.Chart); err != nil {
		s.renderError(c, errors.Wrap(err, "failed to render chart"))
		return
	}

	legend := make([]legendEntry, len(render.Chart.Series))
	for i, series := range render.Chart.Series {
		total := 0
		for _, n := range series.Counts {
			total += n
		}
		legend[i] = legendEntry{Name: series.Name, Color: "#" + chart.SeriesColor(i), Total: total}
	}

	s.renderTemplate(c, http.StatusOK, "index.html", indexPage{
		Render: render,
		// the SVG renderer escapes every data label
		ChartSVG: template.HTML(svg.String()),
		Legend:   legend,
		Query:    template.URL(app.EncodeSelection(render.Selection).Encode()),
		Notes:    s.notes,
		HasPNG:   s.png != nil,
	})
}

func (s *Server) handleChart(renderer ports.ChartRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		render, err := s.render(c)
		if err != nil {
			s.renderJSONError(c, err)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, render.Chart); err != nil {
			s.renderJSONError(c, errors.Wrap(err, "failed to render chart"))
			return
		}

		etag := core.NewHash(buf.Bytes()).ETag()
		c.Header("ETag", etag)
		c.Header("Cache-Control", "no-cache")
		if c.GetHeader("If-None-Match") == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
	}
}

func (s *Server) handleExportCSV(c *gin.Context) {
	render, err := s.render(c)
	if err != nil {
		s.renderJSONError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := excel.WriteCSV(&buf, render.View); err != nil {
		s.renderJSONError(c, errors.Wrap(err, "failed to export CSV"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="obesity_filtered.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (s *Server) handleExportXLSX(c *gin.Context) {
	render, err := s.render(c)
	if err != nil {
		s.renderJSONError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := excel.WriteXLSX(&buf, render.View); err != nil {
		s.renderJSONError(c, errors.Wrap(err, "failed to export workbook"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="obesity_filtered.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) logFailure(status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	} else {
		s.logger.Debug("rejected request: %v", err)
	}
}

func (s *Server) renderError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	s.logFailure(status, err)
	s.renderTemplate(c, status, "error.html", errorPage{
		Status:  status,
		Code:    errors.GetCode(err),
		Message: err.Error(),
	})
}

func (s *Server) renderJSONError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	s.logFailure(status, err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
