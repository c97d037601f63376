package service

import (
	"context"
	"sort"
	"time"

	"creditwatch/internal/domain"
	"creditwatch/internal/finance"
	"creditwatch/internal/port"
)

const topClientCount = 5

// DashboardService builds the portfolio-wide view. Everything is recomputed
// from current invoices and payments on each fetch.
type DashboardService interface {
	Get(ctx context.Context) (*domain.DashboardData, error)
}

type dashboardService struct {
	clients  port.ClientRepository
	invoices port.InvoiceRepository
	payments port.PaymentRepository
	now      func() time.Time
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(
	clients port.ClientRepository,
	invoices port.InvoiceRepository,
	payments port.PaymentRepository,
	now func() time.Time,
) DashboardService {
	return &dashboardService{clients: clients, invoices: invoices, payments: payments, now: now}
}

func (s *dashboardService) Get(ctx context.Context) (*domain.DashboardData, error) {
	today := domain.DateOf(s.now())

	invoices, err := s.invoices.List(ctx, port.InvoiceFilter{})
	if err != nil {
		return nil, err
	}
	figs := figuresOf(invoices)
	totalOutstanding, totalOverdue := finance.PortfolioTotals(figs, today)

	clients, err := s.clients.List(ctx, "")
	if err != nil {
		return nil, err
	}
	totals := finance.AggregateByClient(figs, today)

	// Only clients that actually have invoices compete for the top slots.
	summaries := finance.Summaries(clients, totals)
	withInvoices := summaries[:0]
	for _, sum := range summaries {
		if sum.InvoiceCount > 0 {
			withInvoices = append(withInvoices, sum)
		}
	}
	// Clients come back alphabetically; ranking ties break by creation order.
	sort.SliceStable(withInvoices, func(i, j int) bool {
		return withInvoices[i].CreatedAt.Before(withInvoices[j].CreatedAt)
	})
	top := finance.RankByOutstanding(withInvoices, topClientCount)

	paymentsToday, err := s.payments.TotalOn(ctx, today)
	if err != nil {
		return nil, err
	}

	totalClients, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalInvoices, err := s.invoices.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardData{
		TotalOutstanding:      totalOutstanding,
		TotalOverdue:          totalOverdue,
		PaymentsToday:         paymentsToday,
		TotalClients:          totalClients,
		TotalInvoices:         totalInvoices,
		TopOutstandingClients: top,
	}, nil
}
