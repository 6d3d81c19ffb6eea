package ports

import (
	"context"

	"obesitydash/domain/survey"
)

// SurveySource loads the full survey table. Implementations read their backing store on
// every call; caching is layered on top.
type SurveySource interface {
	LoadTable(ctx context.Context) (*survey.Table, error)

	// Describe names the source for logs and the page footer
	Describe() string
}
