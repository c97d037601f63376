package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creditwatch/internal/domain"
	"creditwatch/internal/finance"
	"creditwatch/internal/port"
)

// CreateClientInput is the DTO for creating a client.
type CreateClientInput struct {
	CompanyName   string          `json:"company_name" binding:"required"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
}

// UpdateClientInput is the DTO for a partial client update. Nil fields keep
// their stored value.
type UpdateClientInput struct {
	CompanyName   *string          `json:"company_name"`
	ContactPerson *string          `json:"contact_person"`
	Phone         *string          `json:"phone"`
	Email         *string          `json:"email"`
	CreditLimit   *decimal.Decimal `json:"credit_limit"`
}

// ClientService defines client operations. Reads return summaries with the
// derived financial aggregates attached.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error)
	List(ctx context.Context, search string) ([]domain.ClientSummary, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	clients  port.ClientRepository
	invoices port.InvoiceRepository
	now      func() time.Time
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clients port.ClientRepository, invoices port.InvoiceRepository, now func() time.Time) ClientService {
	return &clientService{clients: clients, invoices: invoices, now: now}
}

func (s *clientService) Create(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		CreditLimit:   input.CreditLimit,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoices.List(ctx, port.InvoiceFilter{ClientID: &id})
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now())
	totals := finance.AggregateByClient(figuresOf(invoices), today)
	summaries := finance.Summaries([]domain.Client{*client}, totals)
	return &summaries[0], nil
}

func (s *clientService) List(ctx context.Context, search string) ([]domain.ClientSummary, error) {
	clients, err := s.clients.List(ctx, search)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoices.List(ctx, port.InvoiceFilter{})
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now())
	totals := finance.AggregateByClient(figuresOf(invoices), today)
	return finance.Summaries(clients, totals), nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		client.CompanyName = *input.CompanyName
	}
	if input.ContactPerson != nil {
		client.ContactPerson = *input.ContactPerson
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.CreditLimit != nil {
		client.CreditLimit = *input.CreditLimit
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clients.Delete(ctx, id)
}
