package finance_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"creditwatch/internal/domain"
	"creditwatch/internal/finance"
)

var today = domain.NewDate(2025, time.March, 15)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCompute_UnpaidInvoice(t *testing.T) {
	st := finance.Compute(d("5000"), decimal.Zero, domain.NewDate(2025, time.April, 1), today)

	assert.True(t, st.Outstanding.Equal(d("5000")))
	assert.Equal(t, domain.StatusUnpaid, st.Status)
	assert.False(t, st.IsOverdue)
}

func TestCompute_PartialThenPaid(t *testing.T) {
	due := domain.NewDate(2025, time.February, 1) // in the past

	st := finance.Compute(d("5000"), d("2000"), due, today)
	assert.True(t, st.Outstanding.Equal(d("3000")))
	assert.Equal(t, domain.StatusPartial, st.Status)
	assert.True(t, st.IsOverdue)

	// A further payment of 3000 settles the invoice; a settled invoice is
	// never overdue even with a past due date.
	st = finance.Compute(d("5000"), d("5000"), due, today)
	assert.True(t, st.Outstanding.IsZero())
	assert.Equal(t, domain.StatusPaid, st.Status)
	assert.False(t, st.IsOverdue)
}

func TestCompute_UnpaidPastDueIsOverdue(t *testing.T) {
	yesterday := domain.NewDate(2025, time.March, 14)

	st := finance.Compute(d("1000"), decimal.Zero, yesterday, today)

	assert.Equal(t, domain.StatusUnpaid, st.Status)
	assert.True(t, st.IsOverdue)
}

func TestCompute_DueTodayIsNotOverdue(t *testing.T) {
	st := finance.Compute(d("1000"), decimal.Zero, today, today)
	assert.False(t, st.IsOverdue, "overdue requires due date strictly before today")
}

func TestCompute_OutstandingNeverNegative(t *testing.T) {
	st := finance.Compute(d("1000"), d("1500"), today, today)
	assert.True(t, st.Outstanding.IsZero())
	assert.Equal(t, domain.StatusPaid, st.Status)
}

func TestCompute_ExactDecimalNoDrift(t *testing.T) {
	// 0.1 + 0.2 style sums must stay exact in decimal arithmetic.
	paid := d("0.10").Add(d("0.20"))
	st := finance.Compute(d("0.30"), paid, domain.NewDate(2025, time.January, 1), today)
	assert.True(t, st.Outstanding.IsZero())
	assert.Equal(t, domain.StatusPaid, st.Status)
}

func TestCompute_Idempotent(t *testing.T) {
	first := finance.Compute(d("750"), d("250"), today, today)
	second := finance.Compute(d("750"), d("250"), today, today)
	assert.Equal(t, first, second)
}

func TestValidatePayment(t *testing.T) {
	outstanding := d("3000")

	assert.NoError(t, finance.ValidatePayment(d("3000"), outstanding))
	assert.NoError(t, finance.ValidatePayment(d("0.01"), outstanding))
	assert.ErrorIs(t, finance.ValidatePayment(decimal.Zero, outstanding), domain.ErrInvalidAmount)
	assert.ErrorIs(t, finance.ValidatePayment(d("-5"), outstanding), domain.ErrInvalidAmount)
	assert.ErrorIs(t, finance.ValidatePayment(d("3000.01"), outstanding), domain.ErrPaymentExceedsOutstanding)
}

func TestAggregateByClient(t *testing.T) {
	clientA := uuid.New()
	clientB := uuid.New()
	past := domain.NewDate(2025, time.January, 1)
	future := domain.NewDate(2025, time.December, 1)

	figs := []finance.Figures{
		{ClientID: clientA, Total: d("1000"), Paid: decimal.Zero, DueDate: past},   // overdue 1000
		{ClientID: clientA, Total: d("2000"), Paid: d("500"), DueDate: future},     // outstanding 1500
		{ClientID: clientA, Total: d("300"), Paid: d("300"), DueDate: past},        // settled
		{ClientID: clientB, Total: d("4000"), Paid: decimal.Zero, DueDate: future}, // outstanding 4000
	}

	totals := finance.AggregateByClient(figs, today)

	a := totals[clientA]
	assert.True(t, a.Outstanding.Equal(d("2500")))
	assert.True(t, a.Overdue.Equal(d("1000")))
	assert.Equal(t, 1, a.OverdueCount)
	assert.Equal(t, 3, a.InvoiceCount)

	b := totals[clientB]
	assert.True(t, b.Outstanding.Equal(d("4000")))
	assert.True(t, b.Overdue.IsZero())
	assert.Equal(t, 1, b.InvoiceCount)
}

func TestAggregateByClient_RemovedInvoiceLeavesOthersUntouched(t *testing.T) {
	clientA := uuid.New()
	clientB := uuid.New()
	future := domain.NewDate(2025, time.December, 1)

	figs := []finance.Figures{
		{ClientID: clientA, Total: d("1000"), Paid: decimal.Zero, DueDate: future},
		{ClientID: clientA, Total: d("500"), Paid: decimal.Zero, DueDate: future},
		{ClientID: clientB, Total: d("900"), Paid: decimal.Zero, DueDate: future},
	}
	before := finance.AggregateByClient(figs, today)
	assert.True(t, before[clientA].Outstanding.Equal(d("1500")))

	// Deleting one of A's invoices affects only A's aggregate.
	after := finance.AggregateByClient(figs[1:], today)
	assert.True(t, after[clientA].Outstanding.Equal(d("500")))
	assert.Equal(t, before[clientB], after[clientB])
}

func TestPortfolioTotals(t *testing.T) {
	past := domain.NewDate(2025, time.January, 1)
	future := domain.NewDate(2025, time.December, 1)

	outstanding, overdue := finance.PortfolioTotals([]finance.Figures{
		{ClientID: uuid.New(), Total: d("1000"), Paid: decimal.Zero, DueDate: past},
		{ClientID: uuid.New(), Total: d("2500"), Paid: d("500"), DueDate: future},
	}, today)

	assert.True(t, outstanding.Equal(d("3000")))
	assert.True(t, overdue.Equal(d("1000")))
}

func TestRankByOutstanding_StableTieBreak(t *testing.T) {
	mk := func(name, outstanding string) domain.ClientSummary {
		return domain.ClientSummary{
			Client:           domain.Client{ID: uuid.New(), CompanyName: name},
			TotalOutstanding: d(outstanding),
		}
	}

	// Input in client creation order; beta and gamma tie.
	in := []domain.ClientSummary{
		mk("alpha", "100"),
		mk("beta", "500"),
		mk("gamma", "500"),
		mk("delta", "900"),
	}

	ranked := finance.RankByOutstanding(in, 3)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "delta", ranked[0].CompanyName)
	assert.Equal(t, "beta", ranked[1].CompanyName)
	assert.Equal(t, "gamma", ranked[2].CompanyName)

	// Recomputing yields the identical ranking.
	again := finance.RankByOutstanding(in, 3)
	assert.Equal(t, ranked, again)

	// Input order is untouched.
	assert.Equal(t, "alpha", in[0].CompanyName)
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹3,500", finance.FormatINR(d("3500")))
	assert.Equal(t, "₹1,00,000", finance.FormatINR(d("100000")))
	assert.Equal(t, "₹12,34,568", finance.FormatINR(d("1234567.80")))
	assert.Equal(t, "₹0", finance.FormatINR(decimal.Zero))
}
