// Package finance derives all financial state shown by the system: per-invoice
// outstanding, status and overdue flag, per-client and portfolio aggregates,
// and the outstanding ranking. Every function here is a pure function of its
// inputs; the current date is always passed in by the caller.
package finance

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creditwatch/internal/domain"
)

// Figures is the raw money input for one invoice.
type Figures struct {
	InvoiceID uuid.UUID
	ClientID  uuid.UUID
	Total     decimal.Decimal
	Paid      decimal.Decimal
	DueDate   domain.Date
}

// State is the derived financial state of one invoice.
type State struct {
	Outstanding decimal.Decimal
	Status      domain.InvoiceStatus
	IsOverdue   bool
}

// Compute derives outstanding, status and the overdue flag for a single
// invoice. Outstanding never goes below zero. A fully paid invoice is never
// overdue regardless of its due date.
func Compute(total, paid decimal.Decimal, dueDate, today domain.Date) State {
	outstanding := total.Sub(paid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}

	var status domain.InvoiceStatus
	switch {
	case outstanding.IsZero():
		status = domain.StatusPaid
	case paid.IsPositive():
		status = domain.StatusPartial
	default:
		status = domain.StatusUnpaid
	}

	return State{
		Outstanding: outstanding,
		Status:      status,
		IsOverdue:   outstanding.IsPositive() && dueDate.Before(today),
	}
}

// ValidatePayment checks a proposed payment amount against the invoice's
// current outstanding. Amounts above the outstanding are rejected, never
// clamped; the caller must re-check against fresh sums at record time.
func ValidatePayment(amount, outstanding decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(outstanding) {
		return domain.ErrPaymentExceedsOutstanding
	}
	return nil
}

// ClientTotals aggregates one client's invoices.
type ClientTotals struct {
	Outstanding  decimal.Decimal
	Overdue      decimal.Decimal
	OverdueCount int
	InvoiceCount int
}

// AggregateByClient folds invoice figures into per-client totals. Fully paid
// invoices contribute only to the invoice count.
func AggregateByClient(figs []Figures, today domain.Date) map[uuid.UUID]ClientTotals {
	byClient := make(map[uuid.UUID]ClientTotals)
	for _, f := range figs {
		t := byClient[f.ClientID]
		t.InvoiceCount++
		st := Compute(f.Total, f.Paid, f.DueDate, today)
		if st.Outstanding.IsPositive() {
			t.Outstanding = t.Outstanding.Add(st.Outstanding)
			if st.IsOverdue {
				t.Overdue = t.Overdue.Add(st.Outstanding)
				t.OverdueCount++
			}
		}
		byClient[f.ClientID] = t
	}
	return byClient
}

// PortfolioTotals sums outstanding and overdue amounts over all invoices.
func PortfolioTotals(figs []Figures, today domain.Date) (outstanding, overdue decimal.Decimal) {
	for _, f := range figs {
		st := Compute(f.Total, f.Paid, f.DueDate, today)
		outstanding = outstanding.Add(st.Outstanding)
		if st.IsOverdue {
			overdue = overdue.Add(st.Outstanding)
		}
	}
	return outstanding, overdue
}

// Summaries attaches aggregates to clients, preserving the input order.
func Summaries(clients []domain.Client, totals map[uuid.UUID]ClientTotals) []domain.ClientSummary {
	summaries := make([]domain.ClientSummary, 0, len(clients))
	for _, c := range clients {
		t := totals[c.ID]
		summaries = append(summaries, domain.ClientSummary{
			Client:           c,
			TotalOutstanding: t.Outstanding,
			TotalOverdue:     t.Overdue,
			OverdueCount:     t.OverdueCount,
			InvoiceCount:     t.InvoiceCount,
		})
	}
	return summaries
}

// RankByOutstanding returns the top n clients by total outstanding,
// descending. The sort is stable, so ties keep the input order; callers pass
// clients in a fixed order to make the ranking deterministic across
// recomputations.
func RankByOutstanding(summaries []domain.ClientSummary, n int) []domain.ClientSummary {
	ranked := make([]domain.ClientSummary, len(summaries))
	copy(ranked, summaries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalOutstanding.GreaterThan(ranked[j].TotalOutstanding)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
