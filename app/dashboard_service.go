package app

import (
	"context"
	"time"

	"obesitydash/domain/chart"
	"obesitydash/domain/core"
	"obesitydash/domain/summary"
	"obesitydash/domain/survey"
	"obesitydash/internal"
	"obesitydash/internal/errors"
	"obesitydash/ports"
)

// Render is the complete output of one dashboard re-run.
type Render struct {
	ID        core.RenderID    `json:"render_id"`
	Source    string           `json:"source"`
	Controls  survey.Controls  `json:"controls"`
	Selection survey.Selection `json:"selection"`
	Chart     chart.Spec       `json:"chart"`
	Summary   summary.Summary  `json:"summary"`
	View      survey.View      `json:"-"`
}

// DashboardService runs Loader -> Filter -> Chart for a selection. It holds no state
// between renders.
type DashboardService struct {
	source  ports.SurveySource
	options survey.FilterOptions
	logger  *internal.Logger
}

// NewDashboardService creates the render pipeline over source
func NewDashboardService(source ports.SurveySource, options survey.FilterOptions, logger *internal.Logger) *DashboardService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DashboardService{
		source:  source,
		options: options,
		logger:  logger.Component("Dashboard"),
	}
}

// Controls loads the table and returns the widget domains only
func (s *DashboardService) Controls(ctx context.Context) (survey.Controls, error) {
	table, err := s.source.LoadTable(ctx)
	if err != nil {
		return survey.Controls{}, errors.Wrap(err, "failed to load survey data")
	}
	return survey.BuildControls(table, s.options), nil
}

// Render re-runs the whole pipeline for sel. A load failure fails the render; an empty
// view does not.
func (s *DashboardService) Render(ctx context.Context, sel survey.Selection) (*Render, error) {
	start := time.Now()
	if err := sel.Validate(); err != nil {
		return nil, errors.InvalidInput("invalid filter selection", err)
	}

	table, err := s.source.LoadTable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load survey data")
	}

	view := survey.Filter(table, sel, s.options)
	stats, err := summary.Compute(view, table.Len())
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise filtered rows")
	}

	render := &Render{
		ID:        core.NewRenderID(),
		Source:    s.source.Describe(),
		Controls:  survey.BuildControls(table, s.options),
		Selection: sel,
		Chart:     chart.BuildBarSpec(view),
		Summary:   stats,
		View:      view,
	}

	s.logger.Debug("render %s: %d/%d rows in %s", render.ID, view.Len(), table.Len(), time.Since(start))
	return render, nil
}
