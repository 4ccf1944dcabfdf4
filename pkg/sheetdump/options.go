// Package sheetdump reads xlsx workbooks for plain-text inspection.
package sheetdump

// DefaultMaxRows is the number of grid rows rendered by default.
const DefaultMaxRows = 80

// Options configures the manual cell extractor.
type Options struct {
	// WorksheetPart names the archive part to scan.
	// If empty, the first sheet declared by the workbook is used.
	WorksheetPart string
	// MaxRows caps the number of rendered rows. Values below 1 mean DefaultMaxRows.
	MaxRows int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		MaxRows: DefaultMaxRows,
	}
}

// RowLimit returns the effective rendered row cap.
func (o Options) RowLimit() int {
	if o.MaxRows < 1 {
		return DefaultMaxRows
	}
	return o.MaxRows
}
