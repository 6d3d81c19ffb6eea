package excel

// ExcelConfig holds configuration for the spreadsheet data source
type ExcelConfig struct {
	FilePath string `json:"file_path"`
	// Sheet is the worksheet read from .xlsx files; empty means the first sheet
	Sheet string `json:"sheet"`
}

// DefaultExcelConfig returns the defaults for a survey file at path
func DefaultExcelConfig(path string) ExcelConfig {
	return ExcelConfig{FilePath: path}
}
