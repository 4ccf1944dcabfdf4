// Package parser provides spreadsheet archive parsing utilities.
package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedCellRef indicates a cell reference without a valid column prefix.
var ErrMalformedCellRef = errors.New("malformed cell reference")

// MaxColumn is the last column a worksheet can address ("XFD").
const MaxColumn = 16384

// maxColumnLetters is the length of the longest valid column prefix.
const maxColumnLetters = 3

// ColumnIndex converts column letters to a 1-based column index.
// "A" is 1, "Z" is 26, "AA" is 27. Letters must be uppercase ASCII.
func ColumnIndex(letters string) int {
	col := 0
	for _, ch := range letters {
		col = col*26 + int(ch-'A'+1)
	}
	return col
}

// ColumnLetters is the inverse of ColumnIndex.
func ColumnLetters(col int) string {
	var buf []byte
	for col > 0 {
		col--
		buf = append([]byte{byte('A' + col%26)}, buf...)
		col /= 26
	}
	return string(buf)
}

// columnPrefix returns the leading run of uppercase letters of a cell reference.
func columnPrefix(ref string) string {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	return ref[:i]
}

// CellColumn returns the 1-based column index of a reference such as "B7".
// Columns past MaxColumn are rejected.
func CellColumn(ref string) (int, error) {
	letters := columnPrefix(ref)
	if letters == "" || len(letters) > maxColumnLetters {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCellRef, ref)
	}
	col := ColumnIndex(letters)
	if col > MaxColumn {
		return 0, fmt.Errorf("%w: %q beyond column %d", ErrMalformedCellRef, ref, MaxColumn)
	}
	return col, nil
}
