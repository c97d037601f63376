// Package reminder composes bulk payment reminder messages and the deep
// links that hand them to WhatsApp or a mail client. It performs no I/O;
// delivery is the caller's concern.
package reminder

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"creditwatch/internal/domain"
	"creditwatch/internal/finance"
)

const divider = "──────────"

// Composer builds reminder messages and deep links.
type Composer struct {
	// CountryCode is prefixed to normalized phone digits in WhatsApp links.
	CountryCode string
	// BusinessName is used in the fixed sign-off line.
	BusinessName string
}

// Message is a composed reminder over a selection of invoices.
type Message struct {
	Subject          string
	Body             string
	InvoiceCount     int
	TotalOutstanding decimal.Decimal
}

// Compose builds the reminder message for the selected invoices, iterating
// invoices in their given order. Returns ErrEmptySelection when the selection
// matches none of them.
func (c Composer) Compose(channel domain.ReminderChannel, client *domain.Client, invoices []domain.Invoice, sel Selection) (*Message, error) {
	var (
		lines []string
		total decimal.Decimal
	)
	for _, inv := range invoices {
		if !sel.Contains(inv.ID) {
			continue
		}
		total = total.Add(inv.Outstanding)
		lines = append(lines, fmt.Sprintf("%d. Invoice #%s\n   Amount: %s\n   Outstanding: %s\n   Due Date: %s",
			len(lines)+1,
			inv.InvoiceNumber,
			finance.FormatINR(inv.TotalAmount),
			finance.FormatINR(inv.Outstanding),
			inv.DueDate.String(),
		))
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptySelection
	}

	name := client.CompanyName
	if name == "" {
		name = "Client"
	}
	count := len(lines)

	msg := &Message{InvoiceCount: count, TotalOutstanding: total}
	switch channel {
	case domain.ChannelWhatsApp:
		msg.Body = fmt.Sprintf("Hi %s,\n\nReminder for %d pending %s:\n\n%s\n\n%s\nTotal Outstanding: %s\n\nPlease arrange payment at the earliest.\n\nThank you,\n%s",
			name, count, plural(count, "invoice"), strings.Join(lines, "\n\n"),
			divider, finance.FormatINR(total), c.BusinessName)
	case domain.ChannelEmail:
		msg.Subject = fmt.Sprintf("Payment Reminder – %d Pending %s – %s",
			count, plural(count, "Invoice"), name)
		msg.Body = fmt.Sprintf("Dear %s,\n\nThis is a gentle reminder regarding the following %d pending %s:\n\n%s\n\n%s\nTotal Outstanding: %s\n\nKindly arrange payment at the earliest.\n\nThank you,\n%s",
			name, count, plural(count, "invoice"), strings.Join(lines, "\n\n"),
			divider, finance.FormatINR(total), c.BusinessName)
	default:
		return nil, domain.ErrInvalidChannel
	}
	return msg, nil
}

// nationalNumberLen is the length of a subscriber number without its country
// code. Longer digit strings are taken to carry the code already.
const nationalNumberLen = 10

// WhatsAppLink builds a wa.me deep link carrying the message body. An empty
// phone still yields a usable link with no destination number.
func (c Composer) WhatsAppLink(phone string, msg *Message) string {
	digits := NormalizePhone(phone)
	if len(digits) == nationalNumberLen {
		digits = c.CountryCode + digits
	}
	return "https://wa.me/" + digits + "?text=" + encodeComponent(msg.Body)
}

// MailtoLink builds a mailto deep link with subject and body.
func (c Composer) MailtoLink(email string, msg *Message) string {
	return "mailto:" + email + "?subject=" + encodeComponent(msg.Subject) + "&body=" + encodeComponent(msg.Body)
}

// NormalizePhone strips every non-digit character from a stored phone field.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeComponent percent-encodes like encodeURIComponent: spaces become
// %20, never '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
