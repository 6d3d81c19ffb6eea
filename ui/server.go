package ui

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"obesitydash/app"
	"obesitydash/internal"
	"obesitydash/ports"
)

// Options wires the server's collaborators
type Options struct {
	Service *app.DashboardService
	SVG     ports.ChartRenderer
	PNG     ports.ChartRenderer
	// API is mounted under /api when set
	API    http.Handler
	Logger *internal.Logger
}

// Server represents the web server for the dashboard
type Server struct {
	router    *gin.Engine
	service   *app.DashboardService
	svg       ports.ChartRenderer
	png       ports.ChartRenderer
	templates *template.Template
	notes     template.HTML
	logger    *internal.Logger
}

// NewServer creates a new web server instance. Set the gin mode before calling.
func NewServer(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	notes, err := loadNotes()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		service:   opts.Service,
		svg:       opts.SVG,
		png:       opts.PNG,
		templates: templates,
		notes:     notes,
		logger:    logger.Component("Server"),
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes(opts.API)
	return s, nil
}

// setupMiddleware configures gin middleware and static assets
func (s *Server) setupMiddleware() error {
	s.router.Use(gin.Logger(), gin.Recovery())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return err
	}
	s.router.StaticFS("/static", http.FS(staticFS))
	return nil
}

func (s *Server) setupRoutes(api http.Handler) {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/chart.svg", s.handleChart(s.svg))
	if s.png != nil {
		s.router.GET("/chart.png", s.handleChart(s.png))
	}
	s.router.GET("/export.csv", s.handleExportCSV)
	s.router.GET("/export.xlsx", s.handleExportXLSX)
	s.router.GET("/healthz", s.handleHealth)

	if api != nil {
		s.router.Any("/api/*path", gin.WrapH(http.StripPrefix("/api", api)))
	}
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.logger.Info("listening on %s", addr)
	return s.router.Run(addr)
}
