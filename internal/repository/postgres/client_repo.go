package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	client.ID = uuid.New()
	client.CreatedAt = time.Now().UTC()

	query := `INSERT INTO clients (id, company_name, contact_person, phone, email, credit_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		client.ID, client.CompanyName, client.ContactPerson, client.Phone,
		client.Email, client.CreditLimit, client.CreatedAt)
	if err != nil {
		return fmt.Errorf("clientRepo.Create: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) GetByCompanyName(ctx context.Context, name string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE LOWER(company_name) = LOWER($1)", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByCompanyName: %w", err)
	}
	return &client, nil
}

// List returns clients alphabetically so downstream ranking has a stable
// tie break.
func (r *clientRepo) List(ctx context.Context, search string) ([]domain.Client, error) {
	query := "SELECT * FROM clients ORDER BY company_name ASC"
	args := []any{}
	if search != "" {
		query = `SELECT * FROM clients
			WHERE company_name ILIKE $1 OR contact_person ILIKE $1 OR phone ILIKE $1
			ORDER BY company_name ASC`
		args = append(args, "%"+search+"%")
	}

	clients := []domain.Client{}
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, fmt.Errorf("clientRepo.List: %w", err)
	}
	return clients, nil
}

func (r *clientRepo) Update(ctx context.Context, client *domain.Client) error {
	query := `UPDATE clients SET company_name = $1, contact_person = $2, phone = $3,
		email = $4, credit_limit = $5 WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		client.CompanyName, client.ContactPerson, client.Phone,
		client.Email, client.CreditLimit, client.ID)
	if err != nil {
		return fmt.Errorf("clientRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("clientRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM clients"); err != nil {
		return 0, fmt.Errorf("clientRepo.Count: %w", err)
	}
	return total, nil
}
