package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/net/html/charset"
)

// Part names inside a spreadsheet archive.
const (
	WorkbookPart      = "xl/workbook.xml"
	WorkbookRelsPart  = "xl/_rels/workbook.xml.rels"
	SharedStringsPart = "xl/sharedStrings.xml"
	// DefaultWorksheetPart is used when the workbook does not name a first sheet.
	DefaultWorksheetPart = "xl/worksheets/sheet1.xml"
)

// ErrPartNotFound indicates the archive has no part with the requested name.
var ErrPartNotFound = errors.New("part not found")

// openZipPart opens the named part. The caller closes the returned reader.
func openZipPart(r *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range r.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
}

// readZipPart reads the named part in full.
func readZipPart(r *zip.Reader, name string) ([]byte, error) {
	rc, err := openZipPart(r, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// FirstWorksheetPath returns the part name of the first sheet declared in
// the workbook. It falls back to DefaultWorksheetPart when the workbook or
// its relationships cannot be resolved.
func FirstWorksheetPath(r *zip.Reader) string {
	workbookXML, err := readZipPart(r, WorkbookPart)
	if err != nil {
		return DefaultWorksheetPart
	}
	rID := firstSheetRelID(workbookXML)
	if rID == "" {
		return DefaultWorksheetPart
	}

	relsXML, err := readZipPart(r, WorkbookRelsPart)
	if err != nil {
		return DefaultWorksheetPart
	}
	target := relationshipTarget(relsXML, rID)
	if target == "" {
		return DefaultWorksheetPart
	}
	return resolveRelativePath(target, "xl")
}

// firstSheetRelID returns the relationship id of the first sheet element.
func firstSheetRelID(data []byte) string {
	decoder := newDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			return ""
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			for _, attr := range se.Attr {
				if attr.Name.Local == "id" {
					return attr.Value
				}
			}
			return ""
		}
	}
}

// relationshipTarget returns the Target of the worksheet relationship with the given id.
func relationshipTarget(data []byte, rID string) string {
	decoder := newDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			return ""
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var id, target, relType string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					id = attr.Value
				case "Target":
					target = attr.Value
				case "Type":
					relType = attr.Value
				}
			}
			if id == rID && strings.Contains(strings.ToLower(relType), "worksheet") {
				return target
			}
		}
	}
}

// resolveRelativePath resolves a relationship target against baseDir.
// Absolute targets are rooted at the archive root.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(baseDir, target)
}

// newDecoder returns an XML decoder that honours non UTF-8 encoding declarations.
func newDecoder(rd io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(rd)
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}

// readElementText returns the character data below the current element and
// consumes its end tag.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}
