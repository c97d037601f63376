package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is an authenticated operator of the system.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Client is a credit customer that invoices are issued to.
type Client struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	CompanyName   string          `db:"company_name" json:"company_name"`
	ContactPerson string          `db:"contact_person" json:"contact_person"`
	Phone         string          `db:"phone" json:"phone"`
	Email         string          `db:"email" json:"email"`
	CreditLimit   decimal.Decimal `db:"credit_limit" json:"credit_limit"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// ClientSummary is a client together with its derived financial aggregates.
// Aggregates always equal the sums over that client's invoices.
type ClientSummary struct {
	Client
	TotalOutstanding decimal.Decimal `db:"-" json:"total_outstanding"`
	TotalOverdue     decimal.Decimal `db:"-" json:"total_overdue"`
	OverdueCount     int             `db:"-" json:"overdue_count"`
	InvoiceCount     int             `db:"-" json:"invoice_count"`
}

// Invoice belongs to exactly one client. PaidAmount is loaded alongside the
// stored columns; Outstanding, Status and IsOverdue are derived by the
// finance package and never persisted.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   Date            `db:"invoice_date" json:"invoice_date"`
	DueDate       Date            `db:"due_date" json:"due_date"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`

	PaidAmount  decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	ClientName  string          `db:"client_name" json:"client_name"`
	Outstanding decimal.Decimal `db:"-" json:"outstanding"`
	Status      InvoiceStatus   `db:"-" json:"status"`
	IsOverdue   bool            `db:"-" json:"is_overdue"`
}

// Payment belongs to exactly one invoice.
type Payment struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	PaymentDate Date            `db:"payment_date" json:"payment_date"`
	PaymentMode PaymentMode     `db:"payment_mode" json:"payment_mode"`
	Remarks     string          `db:"remarks" json:"remarks"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`

	InvoiceNumber string `db:"invoice_number" json:"invoice_number,omitempty"`
	ClientName    string `db:"client_name" json:"client_name,omitempty"`
}

// DashboardData is the portfolio-wide read-only view, recomputed per fetch.
type DashboardData struct {
	TotalOutstanding      decimal.Decimal `json:"total_outstanding"`
	TotalOverdue          decimal.Decimal `json:"total_overdue"`
	PaymentsToday         decimal.Decimal `json:"payments_today"`
	TotalClients          int             `json:"total_clients"`
	TotalInvoices         int             `json:"total_invoices"`
	TopOutstandingClients []ClientSummary `json:"top_outstanding_clients"`
}

// ImportResult reports the outcome of a bulk invoice import.
type ImportResult struct {
	TotalRows         int      `json:"total_rows"`
	Imported          int      `json:"imported"`
	Duplicates        int      `json:"duplicates"`
	NewClientsCreated int      `json:"new_clients_created"`
	Errors            []string `json:"errors"`
}

// ReminderLink is a composed payment reminder ready to hand to the client's
// messaging or mail application.
type ReminderLink struct {
	Channel          ReminderChannel `json:"channel"`
	URL              string          `json:"url"`
	Subject          string          `json:"subject,omitempty"`
	Body             string          `json:"body"`
	InvoiceCount     int             `json:"invoice_count"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}
