package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

const paymentSelect = `
	SELECT p.id, p.invoice_id, p.amount, p.payment_date, p.payment_mode, p.remarks, p.created_at,
	       i.invoice_number, c.company_name AS client_name
	FROM payments p
	JOIN invoices i ON i.id = p.invoice_id
	JOIN clients c ON c.id = i.client_id`

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	payment.ID = uuid.New()
	payment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO payments (id, invoice_id, amount, payment_date, payment_mode, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.InvoiceID, payment.Amount, payment.PaymentDate,
		payment.PaymentMode, payment.Remarks, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.GetContext(ctx, &payment, paymentSelect+" WHERE p.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("paymentRepo.GetByID: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepo) List(ctx context.Context, filter port.PaymentFilter) ([]domain.Payment, error) {
	var (
		conds []string
		args  []any
	)
	if filter.InvoiceID != nil {
		args = append(args, *filter.InvoiceID)
		conds = append(conds, fmt.Sprintf("p.invoice_id = $%d", len(args)))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		conds = append(conds, fmt.Sprintf("i.client_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("p.payment_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("p.payment_date <= $%d", len(args)))
	}

	query := paymentSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.payment_date DESC, p.created_at DESC"

	payments := []domain.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("paymentRepo.List: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) SumForInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.GetContext(ctx, &sum,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1", invoiceID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("paymentRepo.SumForInvoice: %w", err)
	}
	return sum, nil
}

func (r *paymentRepo) TotalOn(ctx context.Context, day domain.Date) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.GetContext(ctx, &sum,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE payment_date = $1", day)
	if err != nil {
		return decimal.Zero, fmt.Errorf("paymentRepo.TotalOn: %w", err)
	}
	return sum, nil
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("paymentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
