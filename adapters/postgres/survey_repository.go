package postgres

import (
	"context"
	"fmt"

	"obesitydash/domain/survey"
	"obesitydash/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// surveyRow is the database shape of a survey record
type surveyRow struct {
	Gender        string  `db:"gender"`
	Age           float64 `db:"age"`
	FAVC          string  `db:"favc"`
	FAF           float64 `db:"faf"`
	CALC          string  `db:"calc"`
	FamilyHistory string  `db:"family_history_with_overweight"`
	NObeyesdad    string  `db:"nobeyesdad"`
}

// SurveyRepository reads and replaces survey records in a Postgres table
type SurveyRepository struct {
	db    *sqlx.DB
	table string
}

// NewSurveyRepository creates a repository over the named table
func NewSurveyRepository(db *sqlx.DB, table string) *SurveyRepository {
	return &SurveyRepository{db: db, table: table}
}

// Describe implements ports.SurveySource
func (r *SurveyRepository) Describe() string {
	return "postgres:" + r.table
}

// LoadTable implements ports.SurveySource. Rows come back in insertion order and AgeBand
// is derived on load exactly as for file sources.
func (r *SurveyRepository) LoadTable(ctx context.Context) (*survey.Table, error) {
	query := fmt.Sprintf(`SELECT gender, age, favc, faf, calc, family_history_with_overweight, nobeyesdad
		FROM %s ORDER BY id`, pq.QuoteIdentifier(r.table))

	var rows []surveyRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.DataLoad("failed to query survey records", err)
	}

	records := make([]survey.Record, 0, len(rows))
	for i, row := range rows {
		record, err := survey.NewRecord(row.Gender, row.Age, row.FAVC, row.FAF, row.CALC, row.FamilyHistory, row.NObeyesdad)
		if err != nil {
			return nil, errors.DataLoad("invalid survey record", survey.NewRowError(i+1, survey.ColumnAge, err))
		}
		records = append(records, record)
	}
	return survey.NewTable(records), nil
}

// ReplaceAll swaps the table contents for the given records in one transaction
func (r *SurveyRepository) ReplaceAll(ctx context.Context, table *survey.Table) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	quoted := pq.QuoteIdentifier(r.table)
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+quoted); err != nil {
		return 0, errors.DatabaseError("failed to clear survey table", err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s
		(gender, age, favc, faf, calc, family_history_with_overweight, nobeyesdad)
		VALUES (:gender, :age, :favc, :faf, :calc, :family_history_with_overweight, :nobeyesdad)`, quoted)
	stmt, err := tx.PrepareNamedContext(ctx, insert)
	if err != nil {
		return 0, errors.DatabaseError("failed to prepare insert", err)
	}
	defer stmt.Close()

	for i := 0; i < table.Len(); i++ {
		rec := table.At(i)
		row := surveyRow{
			Gender:        rec.Gender,
			Age:           rec.Age,
			FAVC:          rec.FAVC,
			FAF:           rec.FAF,
			CALC:          rec.CALC,
			FamilyHistory: rec.FamilyHistory,
			NObeyesdad:    rec.NObeyesdad,
		}
		if _, err := stmt.ExecContext(ctx, row); err != nil {
			return 0, errors.DatabaseError(fmt.Sprintf("failed to insert record %d", i+1), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.DatabaseError("failed to commit survey import", err)
	}
	return table.Len(), nil
}
