package sheetdump

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx archive.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrPartNotFound indicates a required part is missing from the archive.
var ErrPartNotFound = parser.ErrPartNotFound

// ErrMalformedCellRef indicates a cell reference without column letters.
var ErrMalformedCellRef = parser.ErrMalformedCellRef

// ExtractionError represents an error while reading one part of a workbook.
type ExtractionError struct {
	SheetName string
	Component string // "shared_strings", "worksheet", "rows"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
