package reminder_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditwatch/internal/domain"
	"creditwatch/internal/reminder"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func invoice(number, total, outstanding string, due domain.Date) domain.Invoice {
	return domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		TotalAmount:   d(total),
		Outstanding:   outstanding2(outstanding),
		DueDate:       due,
	}
}

func outstanding2(v string) decimal.Decimal { return d(v) }

var composer = reminder.Composer{CountryCode: "91", BusinessName: "Accounts Team"}

func testClient() *domain.Client {
	return &domain.Client{
		ID:          uuid.New(),
		CompanyName: "Acme Traders",
		Phone:       "+91 98765-43210",
		Email:       "accounts@acme.example",
	}
}

func TestCompose_WhatsAppMessage(t *testing.T) {
	due1 := domain.NewDate(2025, time.February, 10)
	due2 := domain.NewDate(2025, time.March, 5)
	invoices := []domain.Invoice{
		invoice("INV-001", "1000", "1000", due1),
		invoice("INV-002", "5000", "2500", due2),
	}
	sel := reminder.SelectUnpaid(invoices)

	msg, err := composer.Compose(domain.ChannelWhatsApp, testClient(), invoices, sel)
	require.NoError(t, err)

	assert.Equal(t, 2, msg.InvoiceCount)
	assert.True(t, msg.TotalOutstanding.Equal(d("3500")))
	assert.Contains(t, msg.Body, "Hi Acme Traders,")
	assert.Contains(t, msg.Body, "2 pending invoices")
	assert.Contains(t, msg.Body, "1. Invoice #INV-001")
	assert.Contains(t, msg.Body, "2. Invoice #INV-002")
	assert.Contains(t, msg.Body, "Due Date: 2025-02-10")
	assert.Contains(t, msg.Body, "Total Outstanding: ₹3,500")
	assert.Contains(t, msg.Body, "Thank you,\nAccounts Team")
	// Entries appear in selection order, exactly once each.
	assert.Equal(t, 1, strings.Count(msg.Body, "1. Invoice #"))
	assert.Equal(t, 1, strings.Count(msg.Body, "2. Invoice #"))
	assert.Less(t, strings.Index(msg.Body, "INV-001"), strings.Index(msg.Body, "INV-002"))
}

func TestCompose_EmailHasSubjectAndDistinctWording(t *testing.T) {
	invoices := []domain.Invoice{
		invoice("INV-007", "1200", "1200", domain.NewDate(2025, time.January, 31)),
	}

	msg, err := composer.Compose(domain.ChannelEmail, testClient(), invoices, reminder.SelectUnpaid(invoices))
	require.NoError(t, err)

	assert.Equal(t, "Payment Reminder – 1 Pending Invoice – Acme Traders", msg.Subject)
	assert.Contains(t, msg.Body, "Dear Acme Traders,")
	assert.Contains(t, msg.Body, "gentle reminder")
	assert.Contains(t, msg.Body, "Kindly arrange payment")
	assert.Contains(t, msg.Body, "1 pending invoice:")
}

func TestCompose_SubsetSelectionTotalsOnlySelection(t *testing.T) {
	invoices := []domain.Invoice{
		invoice("A-1", "1000", "1000", domain.NewDate(2025, time.April, 1)),
		invoice("A-2", "2000", "2000", domain.NewDate(2025, time.April, 2)),
		invoice("A-3", "3000", "3000", domain.NewDate(2025, time.April, 3)),
	}
	sel := reminder.NewSelection(invoices[0].ID, invoices[2].ID)

	msg, err := composer.Compose(domain.ChannelWhatsApp, testClient(), invoices, sel)
	require.NoError(t, err)

	assert.Equal(t, 2, msg.InvoiceCount)
	assert.True(t, msg.TotalOutstanding.Equal(d("4000")), "summary covers the selection, not the client's full outstanding")
	assert.NotContains(t, msg.Body, "A-2")
}

func TestCompose_EmptySelection(t *testing.T) {
	invoices := []domain.Invoice{
		invoice("INV-001", "1000", "1000", domain.NewDate(2025, time.April, 1)),
	}

	_, err := composer.Compose(domain.ChannelWhatsApp, testClient(), invoices, reminder.NewSelection())
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
}

func TestCompose_UnknownChannel(t *testing.T) {
	invoices := []domain.Invoice{
		invoice("INV-001", "1000", "1000", domain.NewDate(2025, time.April, 1)),
	}

	_, err := composer.Compose(domain.ReminderChannel("sms"), testClient(), invoices, reminder.SelectUnpaid(invoices))
	assert.ErrorIs(t, err, domain.ErrInvalidChannel)
}

func TestWhatsAppLink(t *testing.T) {
	msg := &reminder.Message{Body: "Hi there, pay up"}

	link := composer.WhatsAppLink("+91 98765-43210", msg)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
	assert.Contains(t, link, "%20")
	assert.NotContains(t, link, "+")

	// Bare 10-digit numbers get the country code prefixed.
	link = composer.WhatsAppLink("98765 43210", msg)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)

	// A subscriber number that happens to start with 91 is still national.
	link = composer.WhatsAppLink("9198765432", msg)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919198765432?text="), link)
}

func TestWhatsAppLink_EmptyPhone(t *testing.T) {
	msg := &reminder.Message{Body: "hello"}

	link := composer.WhatsAppLink("", msg)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="), link)
}

func TestMailtoLink(t *testing.T) {
	msg := &reminder.Message{Subject: "Payment Reminder", Body: "Dear Client,\nplease pay"}

	link := composer.MailtoLink("accounts@acme.example", msg)

	assert.True(t, strings.HasPrefix(link, "mailto:accounts@acme.example?subject=Payment%20Reminder&body="), link)
	assert.Contains(t, link, "%0A", "newlines are percent-encoded")
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "919876543210", reminder.NormalizePhone("+91 98765-43210"))
	assert.Equal(t, "9876543210", reminder.NormalizePhone("98765 43210"))
	assert.Equal(t, "9876543210", reminder.NormalizePhone("(98765) 43210"))
	assert.Equal(t, "", reminder.NormalizePhone("n/a"))
}
