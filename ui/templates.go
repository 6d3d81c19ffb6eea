package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static notes.md
var embeddedFiles embed.FS

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"selected": func(values []string, v string) bool {
			for _, candidate := range values {
				if candidate == v {
					return true
				}
			}
			return false
		},
		"pct": func(f float64) string {
			return fmt.Sprintf("%.1f%%", f*100)
		},
		"num": func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		},
		"until": func(lo, hi int) []int {
			if hi < lo {
				return nil
			}
			res := make([]int, 0, hi-lo+1)
			for i := lo; i <= hi; i++ {
				res = append(res, i)
			}
			return res
		},
		"upper": strings.ToUpper,
	}
}

func parseTemplates() (*template.Template, error) {
	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// renderTemplate executes a template into a buffer first so a failing template never
// leaves a half-written page
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template %s failed: %v", templateName, err)
		c.AbortWithStatusJSON(500, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
