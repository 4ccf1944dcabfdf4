// Package output renders extracted spreadsheet data as plain text.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
)

// CellSeparator joins the cells of one rendered grid row.
const CellSeparator = "|"

// WriteGrid writes the bounds of grid followed by its rows, pipe delimited.
// At most maxRows rows are written; the reported bounds are not truncated.
func WriteGrid(w io.Writer, grid *models.Grid, maxRows int) error {
	bw := bufio.NewWriter(w)

	maxRow, maxCol := grid.Bounds()
	fmt.Fprintf(bw, "Rows: %d, Cols: %d\n", maxRow, maxCol)
	fmt.Fprintln(bw, "--- DATA ---")

	last := min(maxRow, maxRows)
	for r := 1; r <= last; r++ {
		fmt.Fprintln(bw, strings.Join(grid.Row(r, maxCol), CellSeparator))
	}

	return bw.Flush()
}

// WriteWorkbook writes every sheet of wb: a header line, the full table and
// a blank separator line.
func WriteWorkbook(w io.Writer, wb *models.WorkbookData) error {
	bw := bufio.NewWriter(w)

	for _, sheet := range wb.Sheets {
		fmt.Fprintf(bw, "--- Sheet: %s ---\n", sheet.Name)
		if err := writeTable(bw, sheet); err != nil {
			bw.Flush()
			return err
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// writeTable renders a sheet the way a data frame dump looks: the first row
// is the header and each following row is prefixed with its 0-based index.
// Nothing is truncated.
func writeTable(w io.Writer, sheet models.SheetData) error {
	width := sheet.Width()
	header := headerLabels(sheet, width)

	if len(sheet.Rows) <= 1 {
		fmt.Fprintln(w, "Empty DataFrame")
		fmt.Fprintf(w, "Columns: [%s]\n", strings.Join(header, ", "))
		fmt.Fprintln(w, "Index: []")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, label := range header {
		fmt.Fprint(tw, label, "\t")
	}
	fmt.Fprintln(tw)

	for i, row := range sheet.Rows[1:] {
		fmt.Fprint(tw, strconv.Itoa(i), "\t")
		for c := 0; c < width; c++ {
			fmt.Fprint(tw, dataCell(row, c), "\t")
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// headerLabels names each column after the first row, labelling blank
// header cells "Unnamed: <index>".
func headerLabels(sheet models.SheetData, width int) []string {
	labels := make([]string, width)
	var first []string
	if len(sheet.Rows) > 0 {
		first = sheet.Rows[0]
	}
	for c := 0; c < width; c++ {
		if c < len(first) && first[c] != "" {
			labels[c] = first[c]
		} else {
			labels[c] = "Unnamed: " + strconv.Itoa(c)
		}
	}
	return labels
}

func dataCell(row []string, c int) string {
	if c >= len(row) || row[c] == "" {
		return "NaN"
	}
	return row[c]
}
