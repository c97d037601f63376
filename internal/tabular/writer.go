package tabular

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders a single-sheet workbook to w. Cell values go in as-is;
// pass strings for formatted money and dates.
func WriteXLSX(w io.Writer, sheetName string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("tabular: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("tabular: header style: %w", err)
	}

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("tabular: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("tabular: write header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, bold); err != nil {
			return fmt.Errorf("tabular: style header: %w", err)
		}
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("tabular: data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("tabular: write row %d: %w", r+2, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("tabular: write workbook: %w", err)
	}
	return nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized attachment filename,
// {sanitized_name}_{YYYY-MM-DD}.xlsx.
func BuildFilename(name string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(name), now.Format("2006-01-02"))
}
