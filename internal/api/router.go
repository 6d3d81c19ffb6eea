package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"obesitydash/app"
	"obesitydash/internal"
	"obesitydash/internal/errors"
)

// Handler serves the dashboard's JSON API
type Handler struct {
	service *app.DashboardService
	logger  *internal.Logger
}

// NewHandler creates a new API handler
func NewHandler(service *app.DashboardService, logger *internal.Logger) *Handler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Handler{service: service, logger: logger.Component("API")}
}

// Routes returns the API router. Paths are relative; the caller mounts it under /api.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get("/controls", h.handleControls)
	r.Get("/chart", h.handleChart)
	r.Get("/summary", h.handleSummary)
	r.Get("/render", h.handleRender)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, errors.NotFound("endpoint "+r.URL.Path))
	})
	return r
}

func (h *Handler) handleControls(w http.ResponseWriter, r *http.Request) {
	controls, err := h.service.Controls(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, controls)
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	render, ok := h.render(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, render.Chart)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	render, ok := h.render(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, render.Summary)
}

func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	render, ok := h.render(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, render)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request) (*app.Render, bool) {
	sel, err := app.ParseSelection(r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	render, err := h.service.Render(r.Context(), sel)
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	w.Header().Set("X-Render-ID", render.ID.String())
	return render, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed: %v", err)
	}
	h.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
