// Package models defines data structures for spreadsheet dumps.
package models

// Grid is a sparse cell grid keyed by 1-based row and column indexes.
type Grid struct {
	rows map[int]map[int]string
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{rows: make(map[int]map[int]string)}
}

// SetRow stores the cells of row r, replacing any row already stored
// under the same index.
func (g *Grid) SetRow(r int, cells map[int]string) {
	if cells == nil {
		cells = make(map[int]string)
	}
	g.rows[r] = cells
}

// Get returns the text of the cell at (r, c), or "" if it is absent.
func (g *Grid) Get(r, c int) string {
	return g.rows[r][c]
}

// Len returns the number of stored rows.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Bounds returns the largest row index and the largest column index seen.
// A row without cells still counts toward maxRow.
func (g *Grid) Bounds() (maxRow, maxCol int) {
	for r, cells := range g.rows {
		if r > maxRow {
			maxRow = r
		}
		for c := range cells {
			if c > maxCol {
				maxCol = c
			}
		}
	}
	return
}

// Row returns row r as a dense slice covering columns 1..maxCol.
func (g *Grid) Row(r, maxCol int) []string {
	out := make([]string, maxCol)
	cells := g.rows[r]
	for c := 1; c <= maxCol; c++ {
		out[c-1] = cells[c]
	}
	return out
}
