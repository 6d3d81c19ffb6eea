package postgres

import (
	"context"
	"os"
	"testing"

	"obesitydash/domain/survey"
	"obesitydash/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSurveyRepository_ReplaceAndLoad(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	const table = "obesity_survey_test"

	require.NoError(t, migration.NewRunner(table).Run(ctx, db))
	t.Cleanup(func() { db.Exec("DROP TABLE IF EXISTS " + table) })

	var records []survey.Record
	for _, r := range []struct {
		gender string
		age    float64
		faf    float64
		label  string
	}{
		{"Male", 25, 1, "Normal"},
		{"Female", 19, 0, "Obesity"},
		{"Male", 42, 3, "Overweight"},
	} {
		rec, err := survey.NewRecord(r.gender, r.age, "no", r.faf, "no", "no", r.label)
		require.NoError(t, err)
		records = append(records, rec)
	}

	repo := NewSurveyRepository(db, table)
	n, err := repo.ReplaceAll(ctx, survey.NewTable(records))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	loaded, err := repo.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded.Records())
	assert.Equal(t, "postgres:"+table, repo.Describe())
}
