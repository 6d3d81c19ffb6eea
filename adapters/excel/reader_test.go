package excel

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"obesitydash/domain/survey"
	"obesitydash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioCSV = `Gender,Age,Height,FAVC,FAF,CALC,family_history_with_overweight,NObeyesdad
Male,25,1.80,no,1,Sometimes,no,Normal
Female,19,1.62,yes,0,no,yes,Obesity
Male,42,1.75,no,3,Frequently,no,Overweight
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTable_CSV(t *testing.T) {
	path := writeFile(t, "survey.csv", scenarioCSV)
	reader := NewDataReader(DefaultExcelConfig(path), nil)

	table, err := reader.LoadTable(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())
	first := table.At(0)
	assert.Equal(t, "Male", first.Gender)
	assert.Equal(t, 25.0, first.Age)
	assert.Equal(t, survey.AgeBand20to25, first.AgeBand)
	assert.Equal(t, "Sometimes", first.CALC)
	assert.Equal(t, survey.AgeBand41Plus, table.At(2).AgeBand)
	assert.Equal(t, path, reader.Describe())
}

func TestLoadTable_TrimsCellsAndBOM(t *testing.T) {
	content := "\ufeffGender, Age ,FAVC,FAF,CALC,family_history_with_overweight,NObeyesdad\n" +
		" Female , 21.5 ,yes, 2.4 ,no,yes, Obesity_Type_I \n"
	path := writeFile(t, "survey.csv", content)

	table, err := NewDataReader(DefaultExcelConfig(path), nil).LoadTable(context.Background())
	require.NoError(t, err)

	r := table.At(0)
	assert.Equal(t, "Female", r.Gender)
	assert.Equal(t, 2.4, r.FAF)
	assert.Equal(t, "Obesity_Type_I", r.NObeyesdad)
	assert.Equal(t, survey.AgeBand20to25, r.AgeBand)
}

func TestLoadTable_HeaderOnlyIsEmptyTable(t *testing.T) {
	path := writeFile(t, "survey.csv", strings.Join(survey.RequiredColumns, ",")+"\n")

	table, err := NewDataReader(DefaultExcelConfig(path), nil).LoadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestLoadTable_MissingFile(t *testing.T) {
	reader := NewDataReader(DefaultExcelConfig(filepath.Join(t.TempDir(), "absent.csv")), nil)

	_, err := reader.LoadTable(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadTable_MissingColumn(t *testing.T) {
	path := writeFile(t, "survey.csv", "Gender,Age,FAVC,FAF,CALC,NObeyesdad\nMale,25,no,1,no,Normal\n")

	_, err := NewDataReader(DefaultExcelConfig(path), nil).LoadTable(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, survey.ErrMissingColumn)
	assert.Contains(t, err.Error(), survey.ColumnFamilyHistory)
}

func TestLoadTable_BadNumbers(t *testing.T) {
	header := "Gender,Age,FAVC,FAF,CALC,family_history_with_overweight,NObeyesdad\n"

	_, err := NewDataReader(DefaultExcelConfig(writeFile(t, "a.csv", header+"Male,abc,no,1,no,no,Normal\n")), nil).
		LoadTable(context.Background())
	assert.ErrorIs(t, err, survey.ErrInvalidNumber)
	assert.Contains(t, err.Error(), "row 1")

	_, err = NewDataReader(DefaultExcelConfig(writeFile(t, "b.csv", header+"Male,30,no,,no,no,Normal\n")), nil).
		LoadTable(context.Background())
	assert.ErrorIs(t, err, survey.ErrInvalidNumber)

	_, err = NewDataReader(DefaultExcelConfig(writeFile(t, "c.csv", header+"Male,-4,no,1,no,no,Normal\n")), nil).
		LoadTable(context.Background())
	assert.ErrorIs(t, err, survey.ErrInvalidAge)
}

func TestLoadTable_CanceledContext(t *testing.T) {
	path := writeFile(t, "survey.csv", scenarioCSV)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDataReader(DefaultExcelConfig(path), nil).LoadTable(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadTable_XLSXExportReadsBack(t *testing.T) {
	source, err := NewDataReader(DefaultExcelConfig(writeFile(t, "survey.csv", scenarioCSV)), nil).
		LoadTable(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, source.All()))
	path := writeFile(t, "survey.xlsx", buf.String())

	table, err := NewDataReader(DefaultExcelConfig(path), nil).LoadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, source.Records(), table.Records())
}
