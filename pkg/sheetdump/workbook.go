package sheetdump

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
	"github.com/ukaji3/sheetdump/pkg/sheetdump/parser"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook reads every sheet of the workbook at path through excelize.
func LoadWorkbook(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make([]models.SheetData, 0, len(sheetList))
	for _, sheetName := range sheetList {
		sheet, err := parser.ReadSheetRows(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "rows", err)
		}
		sheets = append(sheets, sheet)
	}

	return &models.WorkbookData{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}
