package models

// SheetData holds the rows of one sheet as returned by the spreadsheet
// library. Rows may be ragged.
type SheetData struct {
	// Name is the sheet name.
	Name string
	// Rows holds the cell text of every row, top to bottom.
	Rows [][]string
}

// Width returns the length of the longest row.
func (s SheetData) Width() int {
	width := 0
	for _, row := range s.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// WorkbookData is a workbook loaded in full, sheets in workbook order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets lists the sheets in the order the workbook declares them.
	Sheets []SheetData
}
