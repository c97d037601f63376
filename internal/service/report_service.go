package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
	"creditwatch/internal/tabular"
)

// ReportFilter narrows report rows. Nil fields are ignored. Date bounds apply
// to the invoice date for invoice reports and the payment date for the
// payment report.
type ReportFilter struct {
	ClientID *uuid.UUID
	From     *domain.Date
	To       *domain.Date
}

// InvoiceReportRow is one row of the outstanding and overdue reports. JSON
// keys double as the export column headers.
type InvoiceReportRow struct {
	Client        string          `json:"Client"`
	InvoiceNumber string          `json:"Invoice #"`
	InvoiceDate   domain.Date     `json:"Invoice Date"`
	DueDate       domain.Date     `json:"Due Date"`
	Amount        decimal.Decimal `json:"Amount"`
	Paid          decimal.Decimal `json:"Paid"`
	Outstanding   decimal.Decimal `json:"Outstanding"`
	Status        string          `json:"Status"`
	Overdue       string          `json:"Overdue"`
}

// PaymentReportRow is one row of the payments report.
type PaymentReportRow struct {
	Client        string          `json:"Client"`
	InvoiceNumber string          `json:"Invoice #"`
	PaymentDate   domain.Date     `json:"Payment Date"`
	Amount        decimal.Decimal `json:"Amount"`
	Mode          string          `json:"Mode"`
	Remarks       string          `json:"Remarks"`
}

// ReportService builds the tabular report views and their XLSX exports.
type ReportService interface {
	Outstanding(ctx context.Context, filter ReportFilter) ([]InvoiceReportRow, error)
	Overdue(ctx context.Context, filter ReportFilter) ([]InvoiceReportRow, error)
	Payments(ctx context.Context, filter ReportFilter) ([]PaymentReportRow, error)
	// Export writes the named report as an XLSX workbook and returns the
	// attachment filename. An unknown reportType exports all invoice rows.
	Export(ctx context.Context, reportType string, filter ReportFilter, w io.Writer) (string, error)
}

type reportService struct {
	invoices port.InvoiceRepository
	payments port.PaymentRepository
	now      func() time.Time
}

// NewReportService creates a new ReportService implementation.
func NewReportService(invoices port.InvoiceRepository, payments port.PaymentRepository, now func() time.Time) ReportService {
	return &reportService{invoices: invoices, payments: payments, now: now}
}

func (s *reportService) invoiceRows(ctx context.Context, filter ReportFilter) ([]InvoiceReportRow, error) {
	invoices, err := s.invoices.List(ctx, port.InvoiceFilter{
		ClientID: filter.ClientID,
		From:     filter.From,
		To:       filter.To,
	})
	if err != nil {
		return nil, err
	}
	applyFinance(invoices, domain.DateOf(s.now()))

	// Group by client alphabetically, newest invoices first within a client.
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].ClientName < invoices[j].ClientName
	})

	rows := make([]InvoiceReportRow, 0, len(invoices))
	for _, inv := range invoices {
		overdue := "No"
		if inv.IsOverdue {
			overdue = "Yes"
		}
		rows = append(rows, InvoiceReportRow{
			Client:        inv.ClientName,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate,
			DueDate:       inv.DueDate,
			Amount:        inv.TotalAmount,
			Paid:          inv.PaidAmount,
			Outstanding:   inv.Outstanding,
			Status:        string(inv.Status),
			Overdue:       overdue,
		})
	}
	return rows, nil
}

func (s *reportService) Outstanding(ctx context.Context, filter ReportFilter) ([]InvoiceReportRow, error) {
	rows, err := s.invoiceRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	filtered := rows[:0]
	for _, row := range rows {
		if row.Outstanding.IsPositive() {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (s *reportService) Overdue(ctx context.Context, filter ReportFilter) ([]InvoiceReportRow, error) {
	rows, err := s.invoiceRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	filtered := rows[:0]
	for _, row := range rows {
		if row.Overdue == "Yes" {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (s *reportService) Payments(ctx context.Context, filter ReportFilter) ([]PaymentReportRow, error) {
	payments, err := s.payments.List(ctx, port.PaymentFilter{
		ClientID: filter.ClientID,
		From:     filter.From,
		To:       filter.To,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]PaymentReportRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, PaymentReportRow{
			Client:        p.ClientName,
			InvoiceNumber: p.InvoiceNumber,
			PaymentDate:   p.PaymentDate,
			Amount:        p.Amount,
			Mode:          string(p.PaymentMode),
			Remarks:       p.Remarks,
		})
	}
	return rows, nil
}

var invoiceReportHeader = []string{
	"Client", "Invoice #", "Invoice Date", "Due Date",
	"Amount", "Paid", "Outstanding", "Status", "Overdue",
}

var paymentReportHeader = []string{
	"Client", "Invoice #", "Payment Date", "Amount", "Mode", "Remarks",
}

func (s *reportService) Export(ctx context.Context, reportType string, filter ReportFilter, w io.Writer) (string, error) {
	var (
		header []string
		data   [][]any
	)

	switch reportType {
	case "payments":
		rows, err := s.Payments(ctx, filter)
		if err != nil {
			return "", err
		}
		header = paymentReportHeader
		for _, r := range rows {
			data = append(data, []any{
				r.Client, r.InvoiceNumber, r.PaymentDate.String(),
				r.Amount.InexactFloat64(), r.Mode, r.Remarks,
			})
		}
	default:
		var (
			rows []InvoiceReportRow
			err  error
		)
		switch reportType {
		case "outstanding":
			rows, err = s.Outstanding(ctx, filter)
		case "overdue":
			rows, err = s.Overdue(ctx, filter)
		default:
			rows, err = s.invoiceRows(ctx, filter)
		}
		if err != nil {
			return "", err
		}
		header = invoiceReportHeader
		for _, r := range rows {
			data = append(data, []any{
				r.Client, r.InvoiceNumber, r.InvoiceDate.String(), r.DueDate.String(),
				r.Amount.InexactFloat64(), r.Paid.InexactFloat64(),
				r.Outstanding.InexactFloat64(), r.Status, r.Overdue,
			})
		}
	}

	if err := tabular.WriteXLSX(w, "Report", header, data); err != nil {
		return "", err
	}
	return tabular.BuildFilename(reportType+"_report", s.now()), nil
}
