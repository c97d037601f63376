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

// RecordPaymentInput is the DTO for recording a payment against an invoice.
type RecordPaymentInput struct {
	InvoiceID   uuid.UUID          `json:"invoice_id" binding:"required"`
	Amount      decimal.Decimal    `json:"amount" binding:"required"`
	PaymentDate domain.Date        `json:"payment_date"`
	PaymentMode domain.PaymentMode `json:"payment_mode"`
	Remarks     string             `json:"remarks"`
}

// ListPaymentsInput narrows payment listings. Nil fields are ignored.
type ListPaymentsInput struct {
	InvoiceID *uuid.UUID
	ClientID  *uuid.UUID
	From      *domain.Date
	To        *domain.Date
}

// PaymentService defines payment operations.
type PaymentService interface {
	Record(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)
	List(ctx context.Context, input ListPaymentsInput) ([]domain.Payment, error)
	// MarkInvoicePaid settles the invoice with one payment equal to its
	// current outstanding.
	MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) (*domain.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	payments port.PaymentRepository
	invoices port.InvoiceRepository
	now      func() time.Time
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(payments port.PaymentRepository, invoices port.InvoiceRepository, now func() time.Time) PaymentService {
	return &paymentService{payments: payments, invoices: invoices, now: now}
}

func (s *paymentService) Record(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error) {
	mode := input.PaymentMode
	if mode == "" {
		mode = domain.ModeCash
	}
	if !domain.ValidPaymentModes[mode] {
		return nil, domain.ErrInvalidPaymentMode
	}

	invoice, err := s.invoices.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	// Re-read the paid sum at record time; the bound must hold against the
	// current state, not whatever the caller last saw.
	outstanding, err := s.outstandingFor(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if err := finance.ValidatePayment(input.Amount, outstanding); err != nil {
		return nil, err
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = domain.DateOf(s.now())
	}

	payment := &domain.Payment{
		InvoiceID:   input.InvoiceID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		PaymentMode: mode,
		Remarks:     input.Remarks,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	payment.InvoiceNumber = invoice.InvoiceNumber
	payment.ClientName = invoice.ClientName
	return payment, nil
}

func (s *paymentService) List(ctx context.Context, input ListPaymentsInput) ([]domain.Payment, error) {
	return s.payments.List(ctx, port.PaymentFilter{
		InvoiceID: input.InvoiceID,
		ClientID:  input.ClientID,
		From:      input.From,
		To:        input.To,
	})
}

func (s *paymentService) MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) (*domain.Payment, error) {
	invoice, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.outstandingFor(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if !outstanding.IsPositive() {
		return nil, domain.ErrInvoiceAlreadyPaid
	}

	payment := &domain.Payment{
		InvoiceID:   invoiceID,
		Amount:      outstanding,
		PaymentDate: domain.DateOf(s.now()),
		PaymentMode: domain.ModeCash,
		Remarks:     "Marked as fully paid",
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	payment.InvoiceNumber = invoice.InvoiceNumber
	payment.ClientName = invoice.ClientName
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.payments.Delete(ctx, id)
}

func (s *paymentService) outstandingFor(ctx context.Context, invoice *domain.Invoice) (decimal.Decimal, error) {
	paid, err := s.payments.SumForInvoice(ctx, invoice.ID)
	if err != nil {
		return decimal.Zero, err
	}
	st := finance.Compute(invoice.TotalAmount, paid, invoice.DueDate, domain.DateOf(s.now()))
	return st.Outstanding, nil
}
