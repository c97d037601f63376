package tabular_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"creditwatch/internal/domain"
	"creditwatch/internal/tabular"
)

var importAliases = map[string][]string{
	"client name":    {"client name", "client", "company name", "clientname"},
	"invoice number": {"invoice number", "invoice no", "invoiceno", "invoice #", "invoice"},
	"invoice amount": {"invoice amount", "amount", "total", "total amount", "invoiceamount"},
}

func TestRead_CSV(t *testing.T) {
	csv := "Client Name,Invoice Number,Invoice Amount\nAcme Traders,INV-001,\"1,500\"\nZen Corp,INV-002,2000\n"

	sheet, err := tabular.Read(strings.NewReader(csv), "invoices.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Client Name", "Invoice Number", "Invoice Amount"}, sheet.Header)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "1,500", sheet.Cell(sheet.Rows[0], 2))
}

func TestRead_CSVWithBOM(t *testing.T) {
	csv := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Client,Amount\nAcme,100\n")...)

	sheet, err := tabular.Read(bytes.NewReader(csv), "upload.CSV")
	require.NoError(t, err)

	assert.Equal(t, "Client", sheet.Header[0], "BOM must not leak into the first header")
}

func TestRead_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Invoice No"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Total"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", "INV-009"))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 4500))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	sheet, err := tabular.Read(&buf, "invoices.xlsx")
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "INV-009", sheet.Cell(sheet.Rows[0], 0))
	assert.Equal(t, "4500", sheet.Cell(sheet.Rows[0], 1))
}

func TestRead_UnsupportedExtension(t *testing.T) {
	_, err := tabular.Read(strings.NewReader("{}"), "invoices.json")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestMatchColumns(t *testing.T) {
	sheet := &tabular.Sheet{Header: []string{" Company Name ", "Invoice No", "TOTAL AMOUNT"}}

	matched, missing := sheet.MatchColumns(importAliases)

	assert.Empty(t, missing)
	assert.Equal(t, 0, matched["client name"])
	assert.Equal(t, 1, matched["invoice number"])
	assert.Equal(t, 2, matched["invoice amount"])
}

func TestMatchColumns_Missing(t *testing.T) {
	sheet := &tabular.Sheet{Header: []string{"Client", "Notes"}}

	matched, missing := sheet.MatchColumns(importAliases)

	assert.Equal(t, 0, matched["client name"])
	assert.ElementsMatch(t, []string{"invoice number", "invoice amount"}, missing)
}

func TestCell_RaggedRow(t *testing.T) {
	sheet := &tabular.Sheet{}
	row := []string{"only"}

	assert.Equal(t, "only", sheet.Cell(row, 0))
	assert.Equal(t, "", sheet.Cell(row, 3))
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2025-03-15", "15/03/2025", "15-03-2025", "15-Mar-2025"} {
		got, err := tabular.ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, domain.NewDate(2025, time.March, 15), got, in)
	}

	_, err := tabular.ParseDate("not a date")
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Outstanding_Report", tabular.SanitizeFilename("Outstanding  Report!"))
	assert.Equal(t, "payments_q1", tabular.SanitizeFilename("__payments//q1__"))
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Credit_Report_2025-03-15.xlsx", tabular.BuildFilename("Credit Report", now))
}
