package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// SharedStrings is the workbook's shared string table, indexed from 0.
type SharedStrings []string

// Lookup returns entry i, or "" when i is out of range.
func (s SharedStrings) Lookup(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// SharedStringsResult reports the shared string table of an archive and
// whether the archive carries one at all.
type SharedStringsResult struct {
	Strings SharedStrings
	// Present is false when the archive has no shared strings part.
	Present bool
}

// ReadSharedStrings reads the shared strings part of an archive.
// A missing part yields an empty table and no error; a part that exists
// but cannot be read or decoded is an error.
func ReadSharedStrings(r *zip.Reader) (SharedStringsResult, error) {
	rc, err := openZipPart(r, SharedStringsPart)
	if errors.Is(err, ErrPartNotFound) {
		return SharedStringsResult{}, nil
	}
	if err != nil {
		return SharedStringsResult{}, err
	}
	defer rc.Close()

	sst, err := ParseSharedStrings(rc)
	if err != nil {
		return SharedStringsResult{}, err
	}
	return SharedStringsResult{Strings: sst, Present: true}, nil
}

// ParseSharedStrings decodes shared strings markup. Each si element becomes
// one entry holding the concatenated text of all its t elements, so rich
// text split into several runs comes back as a single string.
func ParseSharedStrings(rd io.Reader) (SharedStrings, error) {
	var result SharedStrings

	decoder := newDecoder(rd)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			text, err := parseStringItem(decoder)
			if err != nil {
				return nil, err
			}
			result = append(result, text)
		}
	}

	return result, nil
}

// parseStringItem reads the remainder of an si element.
func parseStringItem(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				run, err := readElementText(decoder)
				if err != nil {
					return "", err
				}
				text.WriteString(run)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return text.String(), nil
}
