package parser

import (
	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheetRows reads every row of a sheet through excelize.
// Trailing empty rows are dropped by the library; empty rows in between are kept.
func ReadSheetRows(f *excelize.File, sheetName string) (models.SheetData, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.SheetData{}, err
	}

	return models.SheetData{
		Name: sheetName,
		Rows: rows,
	}, nil
}
