package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
	"creditwatch/internal/reminder"
)

// ComposeReminderInput is the DTO for composing a payment reminder. An empty
// InvoiceIDs list means every invoice with an outstanding balance.
type ComposeReminderInput struct {
	Channel    domain.ReminderChannel `json:"channel" binding:"required"`
	InvoiceIDs []uuid.UUID            `json:"invoice_ids"`
}

// ReminderService composes payment reminders for a client and optionally
// delivers the email variant.
type ReminderService interface {
	Compose(ctx context.Context, clientID uuid.UUID, input ComposeReminderInput) (*domain.ReminderLink, error)
	// Send composes the email variant and delivers it through the
	// configured sender.
	Send(ctx context.Context, clientID uuid.UUID, input ComposeReminderInput) (*domain.ReminderLink, error)
}

type reminderService struct {
	clients  port.ClientRepository
	invoices port.InvoiceRepository
	composer reminder.Composer
	sender   port.EmailSender
	now      func() time.Time
}

// NewReminderService creates a new ReminderService implementation.
func NewReminderService(
	clients port.ClientRepository,
	invoices port.InvoiceRepository,
	composer reminder.Composer,
	sender port.EmailSender,
	now func() time.Time,
) ReminderService {
	return &reminderService{
		clients:  clients,
		invoices: invoices,
		composer: composer,
		sender:   sender,
		now:      now,
	}
}

func (s *reminderService) Compose(ctx context.Context, clientID uuid.UUID, input ComposeReminderInput) (*domain.ReminderLink, error) {
	client, invoices, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// An explicit selection can only narrow the unpaid set; settled invoices
	// never appear in a reminder even when their IDs are passed in.
	sel := reminder.SelectUnpaid(invoices)
	if len(input.InvoiceIDs) > 0 {
		chosen := reminder.NewSelection(input.InvoiceIDs...)
		for id := range sel {
			if !chosen.Contains(id) {
				delete(sel, id)
			}
		}
	}

	msg, err := s.composer.Compose(input.Channel, client, invoices, sel)
	if err != nil {
		return nil, err
	}

	link := &domain.ReminderLink{
		Channel:          input.Channel,
		Subject:          msg.Subject,
		Body:             msg.Body,
		InvoiceCount:     msg.InvoiceCount,
		TotalOutstanding: msg.TotalOutstanding,
	}
	switch input.Channel {
	case domain.ChannelWhatsApp:
		link.URL = s.composer.WhatsAppLink(client.Phone, msg)
	case domain.ChannelEmail:
		if client.Email == "" {
			return nil, domain.ErrMissingEmail
		}
		link.URL = s.composer.MailtoLink(client.Email, msg)
	}
	return link, nil
}

func (s *reminderService) Send(ctx context.Context, clientID uuid.UUID, input ComposeReminderInput) (*domain.ReminderLink, error) {
	input.Channel = domain.ChannelEmail
	link, err := s.Compose(ctx, clientID, input)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := s.sender.SendReminder(ctx, client.Email, client.CompanyName, link.Subject, link.Body); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *reminderService) load(ctx context.Context, clientID uuid.UUID) (*domain.Client, []domain.Invoice, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}

	invoices, err := s.invoices.List(ctx, port.InvoiceFilter{ClientID: &clientID})
	if err != nil {
		return nil, nil, err
	}
	applyFinance(invoices, domain.DateOf(s.now()))
	return client, invoices, nil
}
