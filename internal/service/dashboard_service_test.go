package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
	"creditwatch/internal/service"
	"creditwatch/mocks"
)

func TestDashboardService_Get(t *testing.T) {
	mockClients := new(mocks.MockClientRepo)
	mockInvoices := new(mocks.MockInvoiceRepo)
	mockPayments := new(mocks.MockPaymentRepo)
	svc := service.NewDashboardService(mockClients, mockInvoices, mockPayments, fixedNow)

	past := domain.NewDate(2025, time.January, 1)
	future := domain.NewDate(2025, time.December, 1)

	acme := domain.Client{ID: uuid.New(), CompanyName: "Acme Traders"}
	zen := domain.Client{ID: uuid.New(), CompanyName: "Zen Corp"}
	idle := domain.Client{ID: uuid.New(), CompanyName: "Idle Ltd"} // no invoices

	invoices := []domain.Invoice{
		{ID: uuid.New(), ClientID: acme.ID, TotalAmount: d("1000"), PaidAmount: d("0"), DueDate: past},
		{ID: uuid.New(), ClientID: acme.ID, TotalAmount: d("2000"), PaidAmount: d("500"), DueDate: future},
		{ID: uuid.New(), ClientID: zen.ID, TotalAmount: d("4000"), PaidAmount: d("0"), DueDate: future},
	}

	mockInvoices.On("List", mock.Anything, port.InvoiceFilter{}).Return(invoices, nil)
	mockClients.On("List", mock.Anything, "").Return([]domain.Client{acme, idle, zen}, nil)
	mockPayments.On("TotalOn", mock.Anything, domain.NewDate(2025, time.March, 15)).Return(d("500"), nil)
	mockClients.On("Count", mock.Anything).Return(3, nil)
	mockInvoices.On("Count", mock.Anything).Return(3, nil)

	data, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.True(t, data.TotalOutstanding.Equal(d("6500")))
	assert.True(t, data.TotalOverdue.Equal(d("1000")))
	assert.True(t, data.PaymentsToday.Equal(d("500")))
	assert.Equal(t, 3, data.TotalClients)
	assert.Equal(t, 3, data.TotalInvoices)

	// Zen (4000) outranks Acme (2500); Idle has no invoices and never appears.
	require.Len(t, data.TopOutstandingClients, 2)
	assert.Equal(t, "Zen Corp", data.TopOutstandingClients[0].CompanyName)
	assert.Equal(t, "Acme Traders", data.TopOutstandingClients[1].CompanyName)
	assert.Equal(t, 1, data.TopOutstandingClients[1].OverdueCount)
}

func TestDashboardService_Get_TieBreaksByCreationOrder(t *testing.T) {
	mockClients := new(mocks.MockClientRepo)
	mockInvoices := new(mocks.MockInvoiceRepo)
	mockPayments := new(mocks.MockPaymentRepo)
	svc := service.NewDashboardService(mockClients, mockInvoices, mockPayments, fixedNow)

	// Zebra was created first but sorts last alphabetically; both owe 1000.
	zebra := domain.Client{ID: uuid.New(), CompanyName: "Zebra Co",
		CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
	aardvark := domain.Client{ID: uuid.New(), CompanyName: "Aardvark Ltd",
		CreatedAt: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)}

	due := domain.NewDate(2025, time.December, 1)
	invoices := []domain.Invoice{
		{ID: uuid.New(), ClientID: zebra.ID, TotalAmount: d("1000"), PaidAmount: d("0"), DueDate: due},
		{ID: uuid.New(), ClientID: aardvark.ID, TotalAmount: d("1000"), PaidAmount: d("0"), DueDate: due},
	}

	mockInvoices.On("List", mock.Anything, port.InvoiceFilter{}).Return(invoices, nil)
	mockClients.On("List", mock.Anything, "").Return([]domain.Client{aardvark, zebra}, nil)
	mockPayments.On("TotalOn", mock.Anything, domain.NewDate(2025, time.March, 15)).Return(d("0"), nil)
	mockClients.On("Count", mock.Anything).Return(2, nil)
	mockInvoices.On("Count", mock.Anything).Return(2, nil)

	data, err := svc.Get(context.Background())

	require.NoError(t, err)
	require.Len(t, data.TopOutstandingClients, 2)
	assert.Equal(t, "Zebra Co", data.TopOutstandingClients[0].CompanyName)
	assert.Equal(t, "Aardvark Ltd", data.TopOutstandingClients[1].CompanyName)
}
