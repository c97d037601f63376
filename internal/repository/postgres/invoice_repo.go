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

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// invoiceSelect loads invoices with the paid sum and client name attached in
// a single query: one grouped subquery over payments instead of a round trip
// per invoice.
const invoiceSelect = `
	SELECT i.id, i.client_id, i.invoice_number, i.invoice_date, i.due_date,
	       i.total_amount, i.created_at,
	       COALESCE(p.paid, 0) AS paid_amount,
	       c.company_name AS client_name
	FROM invoices i
	JOIN clients c ON c.id = i.client_id
	LEFT JOIN (
		SELECT invoice_id, SUM(amount) AS paid
		FROM payments
		GROUP BY invoice_id
	) p ON p.invoice_id = i.id`

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	invoice.ID = uuid.New()
	invoice.CreatedAt = time.Now().UTC()

	query := `INSERT INTO invoices (id, client_id, invoice_number, invoice_date, due_date, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.ClientID, invoice.InvoiceNumber,
		invoice.InvoiceDate, invoice.DueDate, invoice.TotalAmount, invoice.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice, invoiceSelect+" WHERE i.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_number = $1)", invoiceNumber)
	if err != nil {
		return false, fmt.Errorf("invoiceRepo.ExistsByNumber: %w", err)
	}
	return exists, nil
}

func (r *invoiceRepo) List(ctx context.Context, filter port.InvoiceFilter) ([]domain.Invoice, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		conds = append(conds, fmt.Sprintf("i.client_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("i.invoice_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("i.invoice_date <= $%d", len(args)))
	}

	query := invoiceSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY i.invoice_date DESC, i.created_at DESC"

	invoices := []domain.Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Payments cascade via the FK.
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"); err != nil {
		return 0, fmt.Errorf("invoiceRepo.Count: %w", err)
	}
	return total, nil
}
