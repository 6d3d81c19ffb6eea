package migration

import (
	"context"

	"obesitydash/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner creates the survey schema
type MigrationRunner struct {
	version string
	table   string
}

// NewRunner creates a new migration runner for the named survey table
func NewRunner(table string) *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
		table:   table,
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createSurveyTable(ctx, db); err != nil {
		return errors.Wrapf(err, "failed to create %s table", r.table)
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createSurveyTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+pq.QuoteIdentifier(r.table)+` (
			id BIGSERIAL PRIMARY KEY,
			gender TEXT NOT NULL,
			age DOUBLE PRECISION NOT NULL CHECK (age > 0),
			favc TEXT NOT NULL,
			faf DOUBLE PRECISION NOT NULL,
			calc TEXT NOT NULL,
			family_history_with_overweight TEXT NOT NULL,
			nobeyesdad TEXT NOT NULL,
			imported_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS `+pq.QuoteIdentifier("idx_"+r.table+"_gender")+`
		ON `+pq.QuoteIdentifier(r.table)+` (gender, nobeyesdad)
	`)
	return err
}
