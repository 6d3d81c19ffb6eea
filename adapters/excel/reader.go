package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"obesitydash/domain/survey"
	"obesitydash/internal"
	"obesitydash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading survey Excel and CSV files
type DataReader struct {
	config   ExcelConfig
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config ExcelConfig, logger *internal.Logger) *DataReader {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{config: config, fileType: fileType, logger: logger.Component("DataReader")}
}

// Describe names the file backing the reader
func (r *DataReader) Describe() string {
	return r.config.FilePath
}

// LoadTable reads the file and converts every row into a survey record.
// Any failure rejects the whole table.
func (r *DataReader) LoadTable(ctx context.Context) (*survey.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.ReadData()
	if err != nil {
		return nil, errors.DataLoad("failed to read survey file", err)
	}
	table, err := ToTable(data)
	if err != nil {
		return nil, errors.DataLoad(fmt.Sprintf("invalid survey file %s", r.config.FilePath), err)
	}
	r.logger.Debug("loaded %d records from %s", table.Len(), r.config.FilePath)
	return table, nil
}

// ReadData reads data from Excel or CSV files into structured format
func (r *DataReader) ReadData() (*ExcelData, error) {
	r.logger.Trace("starting to read %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.config.FilePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcelData reads the configured (or first) worksheet
func (r *DataReader) readExcelData() (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.config.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("Excel file has no worksheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	r.logger.Debug("sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 1 {
		return nil, fmt.Errorf("Excel file must have a header row")
	}

	return r.processRows(rows)
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	r.logger.Debug("CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 1 {
		return nil, fmt.Errorf("CSV file must have a header row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into ExcelData format
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		// strip a UTF-8 BOM left by spreadsheet exports
		headers[i] = strings.TrimPrefix(strings.TrimSpace(header), "\ufeff")
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRowData, len(headers))

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	r.logger.Trace("%s file processed (%d columns, %d rows)", strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

// ToTable converts raw rows into survey records, deriving AgeBand once per record
func ToTable(data *ExcelData) (*survey.Table, error) {
	for _, column := range survey.RequiredColumns {
		if !data.HasColumn(column) {
			return nil, fmt.Errorf("%w: %s", survey.ErrMissingColumn, column)
		}
	}

	records := make([]survey.Record, 0, len(data.Rows))
	for i, row := range data.Rows {
		rowNum := i + 1
		age, err := parseNumber(row[survey.ColumnAge])
		if err != nil {
			return nil, survey.NewRowError(rowNum, survey.ColumnAge, err)
		}
		faf, err := parseNumber(row[survey.ColumnFAF])
		if err != nil {
			return nil, survey.NewRowError(rowNum, survey.ColumnFAF, err)
		}

		record, err := survey.NewRecord(
			row[survey.ColumnGender],
			age,
			row[survey.ColumnFAVC],
			faf,
			row[survey.ColumnCALC],
			row[survey.ColumnFamilyHistory],
			row[survey.ColumnObesity],
		)
		if err != nil {
			return nil, survey.NewRowError(rowNum, survey.ColumnAge, err)
		}
		records = append(records, record)
	}
	return survey.NewTable(records), nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", survey.ErrInvalidNumber, s)
	}
	return v, nil
}
