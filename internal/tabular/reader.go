// Package tabular reads and writes the spreadsheet formats used for invoice
// import and report export. CSV and XLSX come in; XLSX goes out.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"creditwatch/internal/domain"
)

// UTF-8 BOM bytes, stripped on read for Excel-exported CSVs.
var bom = []byte{0xEF, 0xBB, 0xBF}

// Sheet is one parsed table: a header row plus data rows. Rows may be ragged;
// use Cell for safe access.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Read parses the upload into a Sheet, dispatching on the filename extension.
// Returns domain.ErrUnsupportedFileType for anything but .csv, .xlsx or .xls.
func Read(r io.Reader, filename string) (*Sheet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx", ".xls":
		return readXLSX(r)
	default:
		return nil, domain.ErrUnsupportedFileType
	}
}

func readCSV(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tabular: read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, bom)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tabular: parse csv: %w", err)
	}
	return fromRecords(records), nil
}

func readXLSX(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("tabular: open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("tabular: read sheet: %w", err)
	}
	return fromRecords(rows), nil
}

func fromRecords(records [][]string) *Sheet {
	if len(records) == 0 {
		return &Sheet{}
	}
	return &Sheet{Header: records[0], Rows: records[1:]}
}

// Cell returns the trimmed value at idx, or "" when the row is too short.
func (s *Sheet) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// MatchColumns maps each canonical name to a header index by checking its
// accepted aliases case-insensitively. The second return value lists canonical
// names with no matching header column.
func (s *Sheet) MatchColumns(aliases map[string][]string) (map[string]int, []string) {
	normalized := make([]string, len(s.Header))
	for i, h := range s.Header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	matched := make(map[string]int, len(aliases))
	var missing []string
	for canonical, variants := range aliases {
	scan:
		for i, col := range normalized {
			for _, v := range variants {
				if col == v {
					matched[canonical] = i
					break scan
				}
			}
		}
		if _, ok := matched[canonical]; !ok {
			missing = append(missing, canonical)
		}
	}
	return matched, missing
}

// dateLayouts covers the formats seen in real client spreadsheets. Indian
// day-first ordering is assumed for slash and dash dates.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"02-Jan-2006",
	"2 Jan 2006",
	"01-02-06", // excelize default for date-formatted cells
}

// ParseDate parses a spreadsheet cell as a calendar date, trying each known
// layout in order.
func ParseDate(s string) (domain.Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateOf(t), nil
		}
	}
	return domain.Date{}, fmt.Errorf("tabular: unrecognized date %q", s)
}
