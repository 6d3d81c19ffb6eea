package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"obesitydash/domain/survey"

	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet name used for exported views
const ExportSheet = "Filtered"

func recordCells(r survey.Record) []string {
	return []string{
		r.Gender,
		strconv.FormatFloat(r.Age, 'f', -1, 64),
		r.FAVC,
		strconv.FormatFloat(r.FAF, 'f', -1, 64),
		r.CALC,
		r.FamilyHistory,
		r.NObeyesdad,
		r.AgeBand.String(),
	}
}

// WriteCSV writes the view with a header row in survey.ExportColumns order
func WriteCSV(w io.Writer, view survey.View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(survey.ExportColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := 0; i < view.Len(); i++ {
		if err := cw.Write(recordCells(view.At(i))); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the view as a single-sheet workbook. Numeric columns stay numeric.
func WriteXLSX(w io.Writer, view survey.View) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("failed to name export sheet: %w", err)
	}

	header := make([]interface{}, len(survey.ExportColumns))
	for i, col := range survey.ExportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.Gender, r.Age, r.FAVC, r.FAF, r.CALC, r.FamilyHistory, r.NObeyesdad, r.AgeBand.String(),
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
