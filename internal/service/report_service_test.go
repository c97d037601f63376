package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
	"creditwatch/internal/service"
	"creditwatch/mocks"
)

// Three invoices against fixedNow (2025-03-15): one overdue and unpaid, one
// settled, one partially paid but not yet due.
func reportInvoices() []domain.Invoice {
	return []domain.Invoice{
		{
			InvoiceNumber: "INV-001", ClientName: "Zen Supplies",
			InvoiceDate: domain.NewDate(2025, time.January, 10),
			DueDate:     domain.NewDate(2025, time.February, 10),
			TotalAmount: d("2000"), PaidAmount: d("0"),
		},
		{
			InvoiceNumber: "INV-002", ClientName: "Acme Traders",
			InvoiceDate: domain.NewDate(2025, time.February, 1),
			DueDate:     domain.NewDate(2025, time.March, 1),
			TotalAmount: d("1000"), PaidAmount: d("1000"),
		},
		{
			InvoiceNumber: "INV-003", ClientName: "Acme Traders",
			InvoiceDate: domain.NewDate(2025, time.March, 1),
			DueDate:     domain.NewDate(2025, time.April, 1),
			TotalAmount: d("3000"), PaidAmount: d("500"),
		},
	}
}

func TestReportService_Outstanding(t *testing.T) {
	mockInvoices := new(mocks.MockInvoiceRepo)
	mockPayments := new(mocks.MockPaymentRepo)
	svc := service.NewReportService(mockInvoices, mockPayments, fixedNow)

	mockInvoices.On("List", mock.Anything, port.InvoiceFilter{}).Return(reportInvoices(), nil)

	rows, err := svc.Outstanding(context.Background(), service.ReportFilter{})

	assert.NoError(t, err)
	// Settled INV-002 dropped; remaining rows grouped by client name.
	assert.Len(t, rows, 2)
	assert.Equal(t, "INV-003", rows[0].InvoiceNumber)
	assert.Equal(t, "Partial", rows[0].Status)
	assert.Equal(t, "No", rows[0].Overdue)
	assert.True(t, rows[0].Outstanding.Equal(d("2500")))
	assert.Equal(t, "INV-001", rows[1].InvoiceNumber)
	assert.Equal(t, "Unpaid", rows[1].Status)
	assert.Equal(t, "Yes", rows[1].Overdue)
}

func TestReportService_Overdue(t *testing.T) {
	mockInvoices := new(mocks.MockInvoiceRepo)
	mockPayments := new(mocks.MockPaymentRepo)
	svc := service.NewReportService(mockInvoices, mockPayments, fixedNow)

	mockInvoices.On("List", mock.Anything, port.InvoiceFilter{}).Return(reportInvoices(), nil)

	rows, err := svc.Overdue(context.Background(), service.ReportFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "INV-001", rows[0].InvoiceNumber)
	assert.True(t, rows[0].Outstanding.Equal(d("2000")))
}

func TestReportService_Payments(t *testing.T) {
	mockInvoices := new(mocks.MockInvoiceRepo)
	mockPayments := new(mocks.MockPaymentRepo)
	svc := service.NewReportService(mockInvoices, mockPayments, fixedNow)

	payments := []domain.Payment{
		{
			ClientName: "Acme Traders", InvoiceNumber: "INV-003",
			PaymentDate: domain.NewDate(2025, time.March, 10),
			Amount:      d("500"), PaymentMode: domain.ModeUPI, Remarks: "part payment",
		},
	}
	mockPayments.On("List", mock.Anything, port.PaymentFilter{}).Return(payments, nil)

	rows, err := svc.Payments(context.Background(), service.ReportFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Acme Traders", rows[0].Client)
	assert.Equal(t, "UPI", rows[0].Mode)
	assert.True(t, rows[0].Amount.Equal(d("500")))
}

func TestReportService_Export(t *testing.T) {
	mockInvoices := new(mocks.MockInvoiceRepo)
	mockPayments := new(mocks.MockPaymentRepo)
	svc := service.NewReportService(mockInvoices, mockPayments, fixedNow)

	mockInvoices.On("List", mock.Anything, port.InvoiceFilter{}).Return(reportInvoices(), nil)

	var buf bytes.Buffer
	filename, err := svc.Export(context.Background(), "outstanding", service.ReportFilter{}, &buf)

	assert.NoError(t, err)
	assert.Equal(t, "outstanding_report_2025-03-15.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Report")
	assert.NoError(t, err)
	// Header plus the two outstanding rows.
	assert.Len(t, got, 3)
	assert.Equal(t, "Client", got[0][0])
	assert.Equal(t, "Overdue", got[0][8])
	assert.Equal(t, "INV-003", got[1][1])
	assert.Equal(t, "INV-001", got[2][1])
}
