package survey

import (
	"errors"
	"fmt"
)

// Load-time errors. A table that fails any of these is rejected as a whole.
var (
	ErrMissingColumn = errors.New("required column missing")
	ErrInvalidAge    = errors.New("age outside supported range")
	ErrInvalidNumber = errors.New("value is not a number")
	ErrInvalidFAF    = errors.New("physical activity threshold out of range")
)

// NewRowError attaches the 1-based data row number to a load error.
func NewRowError(row int, column string, err error) error {
	return fmt.Errorf("row %d, column %s: %w", row, column, err)
}
