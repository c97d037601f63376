package reminder_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"creditwatch/internal/domain"
	"creditwatch/internal/reminder"
)

func TestSelectUnpaid_SkipsSettledInvoices(t *testing.T) {
	due := domain.NewDate(2025, time.April, 1)
	invoices := []domain.Invoice{
		invoice("INV-001", "1000", "1000", due),
		invoice("INV-002", "2000", "0", due), // settled
		invoice("INV-003", "500", "250", due),
	}

	sel := reminder.SelectUnpaid(invoices)

	assert.Equal(t, 2, sel.Count())
	assert.True(t, sel.Contains(invoices[0].ID))
	assert.False(t, sel.Contains(invoices[1].ID))
	assert.True(t, sel.Contains(invoices[2].ID))
}

func TestSelection_Toggle(t *testing.T) {
	due := domain.NewDate(2025, time.April, 1)
	inv := invoice("INV-001", "1000", "1000", due)
	sel := reminder.NewSelection()

	sel.Toggle(inv.ID)
	assert.True(t, sel.Contains(inv.ID))

	sel.Toggle(inv.ID)
	assert.False(t, sel.Contains(inv.ID))
	assert.Equal(t, 0, sel.Count())
}

func TestSelection_ToggleAll(t *testing.T) {
	due := domain.NewDate(2025, time.April, 1)
	invoices := []domain.Invoice{
		invoice("INV-001", "1000", "1000", due),
		invoice("INV-002", "2000", "0", due), // settled, never auto-selected
		invoice("INV-003", "500", "250", due),
	}

	sel := reminder.NewSelection(invoices[0].ID)

	// Partial selection: toggle-all selects every unpaid invoice.
	sel.ToggleAll(invoices)
	assert.Equal(t, 2, sel.Count())
	assert.False(t, sel.Contains(invoices[1].ID))

	// Full selection: toggle-all clears it.
	sel.ToggleAll(invoices)
	assert.Equal(t, 0, sel.Count())
}

func TestSelection_ZeroDecimalIsNotSelected(t *testing.T) {
	due := domain.NewDate(2025, time.April, 1)
	inv := invoice("INV-001", "1000", "1000", due)
	inv.Outstanding = decimal.Zero

	sel := reminder.SelectUnpaid([]domain.Invoice{inv})
	assert.Equal(t, 0, sel.Count())
}
