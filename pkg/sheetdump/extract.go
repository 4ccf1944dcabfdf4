package sheetdump

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
	"github.com/ukaji3/sheetdump/pkg/sheetdump/parser"
)

// CellDump is the result of scanning one worksheet without a spreadsheet library.
type CellDump struct {
	// BookName is the workbook file name (no path).
	BookName string
	// WorksheetPart is the archive part that was scanned.
	WorksheetPart string
	// SharedStringsPresent reports whether the archive has a shared strings part.
	SharedStringsPresent bool
	// SharedStringCount is the number of shared string entries.
	SharedStringCount int
	// Grid holds the scanned cells.
	Grid *models.Grid
}

// Extract reads the shared string table and one worksheet straight from
// the xlsx archive at path and returns the worksheet's cells.
func Extract(path string, opts Options) (*CellDump, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer r.Close()

	sst, err := parser.ReadSharedStrings(&r.Reader)
	if err != nil {
		return nil, NewExtractionError("", "shared_strings", err)
	}

	part := opts.WorksheetPart
	if part == "" {
		part = parser.FirstWorksheetPath(&r.Reader)
	}

	grid, err := parser.ReadWorksheet(&r.Reader, part, sst.Strings)
	if err != nil {
		return nil, NewExtractionError(part, "worksheet", err)
	}

	return &CellDump{
		BookName:             filepath.Base(path),
		WorksheetPart:        part,
		SharedStringsPresent: sst.Present,
		SharedStringCount:    len(sst.Strings),
		Grid:                 grid,
	}, nil
}
