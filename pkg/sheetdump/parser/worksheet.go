package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/models"
)

// ReadWorksheet opens a worksheet part of an archive and scans it into a grid.
func ReadWorksheet(r *zip.Reader, part string, sst SharedStrings) (*models.Grid, error) {
	rc, err := openZipPart(r, part)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ParseWorksheet(rc, sst)
}

// ParseWorksheet scans worksheet markup and returns its cells as a sparse
// grid. Shared string cells are resolved against sst. Rows and cells are
// indexed by their declared references, so document order does not matter.
func ParseWorksheet(rd io.Reader, sst SharedStrings) (*models.Grid, error) {
	grid := models.NewGrid()

	decoder := newDecoder(rd)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "row" {
			rowNum, cells, err := parseRow(decoder, se, sst)
			if err != nil {
				return nil, err
			}
			grid.SetRow(rowNum, cells)
		}
	}

	return grid, nil
}

// parseRow reads a row element and its direct c children.
// A row without an r attribute is stored as row 0.
func parseRow(decoder *xml.Decoder, start xml.StartElement, sst SharedStrings) (int, map[int]string, error) {
	rowNum := 0
	for _, attr := range start.Attr {
		if attr.Name.Local == "r" {
			n, err := strconv.Atoi(strings.TrimSpace(attr.Value))
			if err != nil {
				return 0, nil, fmt.Errorf("invalid row index %q: %w", attr.Value, err)
			}
			rowNum = n
		}
	}

	cells := make(map[int]string)
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return 0, nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 && t.Name.Local == "c" {
				col, value, err := parseCell(decoder, t, sst)
				if err != nil {
					return 0, nil, err
				}
				cells[col] = value
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return rowNum, cells, nil
}

// parseCell reads a c element and returns its column index and resolved text.
func parseCell(decoder *xml.Decoder, start xml.StartElement, sst SharedStrings) (int, string, error) {
	var ref, cellType string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "r":
			ref = attr.Value
		case "t":
			cellType = attr.Value
		}
	}

	col, err := CellColumn(ref)
	if err != nil {
		return 0, "", err
	}

	var raw string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return 0, "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 && t.Name.Local == "v" {
				raw, err = readElementText(decoder)
				if err != nil {
					return 0, "", err
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	value, err := resolveValue(raw, cellType, sst)
	if err != nil {
		return 0, "", fmt.Errorf("cell %s: %w", ref, err)
	}
	return col, value, nil
}

// resolveValue maps the raw v text of a cell to its display text.
func resolveValue(raw, cellType string, sst SharedStrings) (string, error) {
	if raw == "" {
		return "", nil
	}
	if cellType != "s" {
		return raw, nil
	}
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid shared string index %q: %w", raw, err)
	}
	return sst.Lookup(idx), nil
}
