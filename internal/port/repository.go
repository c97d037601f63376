package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creditwatch/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ClientRepository defines the contract for client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	// GetByCompanyName matches case-insensitively; import dedupes on it.
	GetByCompanyName(ctx context.Context, name string) (*domain.Client, error)
	// List returns clients alphabetically by company name. A non-empty search
	// filters on company name, contact person and phone.
	List(ctx context.Context, search string) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// InvoiceFilter narrows invoice listings. Nil fields are ignored.
type InvoiceFilter struct {
	ClientID *uuid.UUID
	From     *domain.Date
	To       *domain.Date
}

// InvoiceRepository defines the contract for invoice persistence. Reads
// return invoices with PaidAmount and ClientName populated.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error)
	List(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// PaymentFilter narrows payment listings. Nil fields are ignored.
type PaymentFilter struct {
	InvoiceID *uuid.UUID
	ClientID  *uuid.UUID
	From      *domain.Date
	To        *domain.Date
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]domain.Payment, error)
	// SumForInvoice returns the total recorded against one invoice.
	SumForInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
	// TotalOn returns the sum of payments dated on the given day.
	TotalOn(ctx context.Context, day domain.Date) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
