package sheetdump

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ukaji3/sheetdump/pkg/sheetdump/output"
	"github.com/xuri/excelize/v2"
)

const mainNS = `xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"`

func writeArchive(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create archive: %v", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish archive: %v", err)
	}
	return path
}

func render(t *testing.T, dump *CellDump, opts Options) string {
	t.Helper()

	var buf bytes.Buffer
	if err := output.WriteGrid(&buf, dump.Grid, opts.RowLimit()); err != nil {
		t.Fatalf("WriteGrid failed: %v", err)
	}
	return buf.String()
}

func TestExtractExcelizeWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Score")
	f.SetCellValue("Sheet1", "A2", "Alice")
	f.SetCellValue("Sheet1", "B2", 10)

	tmpFile := filepath.Join(t.TempDir(), "scores.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	opts := DefaultOptions()
	dump, err := Extract(tmpFile, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if dump.BookName != "scores.xlsx" {
		t.Errorf("Expected book name scores.xlsx, got %q", dump.BookName)
	}
	if dump.WorksheetPart != "xl/worksheets/sheet1.xml" {
		t.Errorf("Expected first worksheet part, got %q", dump.WorksheetPart)
	}

	expected := "Rows: 2, Cols: 2\n--- DATA ---\nName|Score\nAlice|10\n"
	if got := render(t, dump, opts); got != expected {
		t.Errorf("output = %q, expected %q", got, expected)
	}
}

func TestExtractHandBuiltArchive(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"xl/sharedStrings.xml": `<sst ` + mainNS + `><si><r><t>Hel</t></r><r><t>lo</t></r></si><si><t>World</t></si></sst>`,
		"xl/worksheets/sheet1.xml": `<worksheet ` + mainNS + `><sheetData>
<row r="3"><c r="B3" t="s"><v>1</v></c></row>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>9</v></c></row>
</sheetData></worksheet>`,
	})

	opts := DefaultOptions()
	dump, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !dump.SharedStringsPresent || dump.SharedStringCount != 2 {
		t.Errorf("shared strings = (%v, %d), expected (true, 2)", dump.SharedStringsPresent, dump.SharedStringCount)
	}

	expected := "Rows: 3, Cols: 2\n--- DATA ---\nHello|\n|\n|World\n"
	if got := render(t, dump, opts); got != expected {
		t.Errorf("output = %q, expected %q", got, expected)
	}
}

func TestExtractWithoutSharedStrings(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"xl/worksheets/sheet1.xml": `<worksheet ` + mainNS + `><sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="C1"><v>42</v></c></row>
</sheetData></worksheet>`,
	})

	dump, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if dump.SharedStringsPresent {
		t.Error("Expected SharedStringsPresent to be false")
	}

	expected := "Rows: 1, Cols: 3\n--- DATA ---\n||42\n"
	if got := render(t, dump, DefaultOptions()); got != expected {
		t.Errorf("output = %q, expected %q", got, expected)
	}
}

func TestExtractTruncatesRows(t *testing.T) {
	var rows strings.Builder
	for r := 150; r >= 1; r-- {
		rows.WriteString(`<row r="` + strconv.Itoa(r) + `"><c r="A` + strconv.Itoa(r) + `"><v>` + strconv.Itoa(r) + `</v></c></row>`)
	}
	path := writeArchive(t, map[string]string{
		"xl/worksheets/sheet1.xml": `<worksheet ` + mainNS + `><sheetData>` + rows.String() + `</sheetData></worksheet>`,
	})

	opts := DefaultOptions()
	dump, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(render(t, dump, opts), "\n"), "\n")
	if lines[0] != "Rows: 150, Cols: 1" {
		t.Errorf("first line = %q", lines[0])
	}
	if len(lines)-2 != 80 {
		t.Errorf("Expected 80 data lines, got %d", len(lines)-2)
	}
	if lines[2] != "1" || lines[len(lines)-1] != "80" {
		t.Errorf("data lines run %q..%q, expected 1..80", lines[2], lines[len(lines)-1])
	}
}

func TestExtractWorksheetPartOverride(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"xl/worksheets/sheet1.xml": `<worksheet ` + mainNS + `><sheetData><row r="1"><c r="A1"><v>one</v></c></row></sheetData></worksheet>`,
		"xl/worksheets/sheet2.xml": `<worksheet ` + mainNS + `><sheetData><row r="1"><c r="A1"><v>two</v></c></row></sheetData></worksheet>`,
	})

	dump, err := Extract(path, Options{WorksheetPart: "xl/worksheets/sheet2.xml"})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got := dump.Grid.Get(1, 1); got != "two" {
		t.Errorf("Get(1, 1) = %q, expected %q", got, "two")
	}
}

func TestExtractErrors(t *testing.T) {
	notZip := filepath.Join(t.TempDir(), "plain.xlsx")
	if err := os.WriteFile(notZip, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name      string
		path      string
		target    error
		component string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.xlsx"), ErrFileNotFound, ""},
		{"not an archive", notZip, ErrInvalidFormat, ""},
		{
			"missing worksheet",
			writeArchive(t, map[string]string{"xl/sharedStrings.xml": "<sst/>"}),
			ErrPartNotFound,
			"worksheet",
		},
		{
			"malformed shared strings",
			writeArchive(t, map[string]string{
				"xl/sharedStrings.xml":     "<sst><si><t>a</si>",
				"xl/worksheets/sheet1.xml": "<worksheet/>",
			}),
			nil,
			"shared_strings",
		},
		{
			"malformed cell reference",
			writeArchive(t, map[string]string{
				"xl/worksheets/sheet1.xml": `<worksheet><sheetData><row r="1"><c r="1"><v>1</v></c></row></sheetData></worksheet>`,
			}),
			ErrMalformedCellRef,
			"worksheet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.path, DefaultOptions())
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error = %v, expected %v", err, tt.target)
			}
			if tt.component != "" {
				var extErr *ExtractionError
				if !errors.As(err, &extErr) {
					t.Fatalf("error = %v, expected *ExtractionError", err)
				}
				if extErr.Component != tt.component {
					t.Errorf("component = %q, expected %q", extErr.Component, tt.component)
				}
			}
		})
	}
}

func TestOptionsRowLimit(t *testing.T) {
	tests := []struct {
		maxRows  int
		expected int
	}{
		{0, DefaultMaxRows},
		{-3, DefaultMaxRows},
		{5, 5},
	}

	for _, tt := range tests {
		if got := (Options{MaxRows: tt.maxRows}).RowLimit(); got != tt.expected {
			t.Errorf("RowLimit() with MaxRows %d = %d, expected %d", tt.maxRows, got, tt.expected)
		}
	}
}
