package service

import (
	"creditwatch/internal/domain"
	"creditwatch/internal/finance"
)

// applyFinance fills the derived fields on each invoice in place.
func applyFinance(invoices []domain.Invoice, today domain.Date) {
	for i := range invoices {
		st := finance.Compute(invoices[i].TotalAmount, invoices[i].PaidAmount, invoices[i].DueDate, today)
		invoices[i].Outstanding = st.Outstanding
		invoices[i].Status = st.Status
		invoices[i].IsOverdue = st.IsOverdue
	}
}

func figuresOf(invoices []domain.Invoice) []finance.Figures {
	figs := make([]finance.Figures, 0, len(invoices))
	for _, inv := range invoices {
		figs = append(figs, finance.Figures{
			InvoiceID: inv.ID,
			ClientID:  inv.ClientID,
			Total:     inv.TotalAmount,
			Paid:      inv.PaidAmount,
			DueDate:   inv.DueDate,
		})
	}
	return figs
}
