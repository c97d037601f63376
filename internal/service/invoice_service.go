package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creditwatch/internal/domain"
	"creditwatch/internal/port"
	"creditwatch/internal/tabular"
)

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	ClientID      uuid.UUID       `json:"client_id" binding:"required"`
	InvoiceNumber string          `json:"invoice_number" binding:"required"`
	InvoiceDate   domain.Date     `json:"invoice_date" binding:"required"`
	DueDate       domain.Date     `json:"due_date" binding:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount" binding:"required"`
}

// ListInvoicesInput narrows invoice listings. The status filter matches
// case-insensitively against the derived status.
type ListInvoicesInput struct {
	ClientID *uuid.UUID
	Status   string
	From     *domain.Date
	To       *domain.Date
}

// InvoiceService defines invoice operations. Reads return invoices with
// derived financial state attached.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, input ListInvoicesInput) ([]domain.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, r io.Reader, filename string, autoCreateClients bool) (*domain.ImportResult, error)
}

type invoiceService struct {
	invoices port.InvoiceRepository
	clients  port.ClientRepository
	now      func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(invoices port.InvoiceRepository, clients port.ClientRepository, now func() time.Time) InvoiceService {
	return &invoiceService{invoices: invoices, clients: clients, now: now}
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if !input.TotalAmount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	client, err := s.clients.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	exists, err := s.invoices.ExistsByNumber(ctx, input.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateInvoiceNumber
	}

	invoice := &domain.Invoice{
		ClientID:      input.ClientID,
		InvoiceNumber: input.InvoiceNumber,
		InvoiceDate:   input.InvoiceDate,
		DueDate:       input.DueDate,
		TotalAmount:   input.TotalAmount,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}

	invoice.ClientName = client.CompanyName
	single := []domain.Invoice{*invoice}
	applyFinance(single, domain.DateOf(s.now()))
	return &single[0], nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	single := []domain.Invoice{*invoice}
	applyFinance(single, domain.DateOf(s.now()))
	return &single[0], nil
}

func (s *invoiceService) List(ctx context.Context, input ListInvoicesInput) ([]domain.Invoice, error) {
	invoices, err := s.invoices.List(ctx, port.InvoiceFilter{
		ClientID: input.ClientID,
		From:     input.From,
		To:       input.To,
	})
	if err != nil {
		return nil, err
	}

	applyFinance(invoices, domain.DateOf(s.now()))

	if input.Status == "" {
		return invoices, nil
	}
	filtered := invoices[:0]
	for _, inv := range invoices {
		if strings.EqualFold(string(inv.Status), input.Status) {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoices.Delete(ctx, id)
}

// importAliases maps canonical import columns to the header spellings seen in
// real client spreadsheets.
var importAliases = map[string][]string{
	"client name":    {"client name", "client", "company name", "clientname"},
	"invoice number": {"invoice number", "invoice no", "invoiceno", "invoice #", "invoice"},
	"invoice date":   {"invoice date", "date", "invoicedate"},
	"due date":       {"due date", "duedate"},
	"invoice amount": {"invoice amount", "amount", "total", "total amount", "invoiceamount"},
}

// Import reads a CSV or XLSX upload and creates invoices row by row. Rows
// with problems are reported in the result and skipped; one bad row never
// aborts the rest of the file.
func (s *invoiceService) Import(ctx context.Context, r io.Reader, filename string, autoCreateClients bool) (*domain.ImportResult, error) {
	sheet, err := tabular.Read(r, filename)
	if err != nil {
		return nil, err
	}

	cols, missing := sheet.MatchColumns(importAliases)
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: looked for %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	result := &domain.ImportResult{TotalRows: len(sheet.Rows), Errors: []string{}}

	for i, row := range sheet.Rows {
		rowNum := i + 2 // 1-indexed plus header row
		var rowErrs []string

		clientName := sheet.Cell(row, cols["client name"])
		invoiceNumber := sheet.Cell(row, cols["invoice number"])
		if clientName == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Missing Client Name", rowNum))
		}
		if invoiceNumber == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Missing Invoice Number", rowNum))
		}

		invoiceDate, err := tabular.ParseDate(sheet.Cell(row, cols["invoice date"]))
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Invalid Invoice Date", rowNum))
		}
		dueDate, err := tabular.ParseDate(sheet.Cell(row, cols["due date"]))
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Invalid Due Date", rowNum))
		}

		rawAmount := strings.ReplaceAll(sheet.Cell(row, cols["invoice amount"]), ",", "")
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Invalid Invoice Amount", rowNum))
		} else if !amount.IsPositive() {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: Invoice Amount must be positive", rowNum))
		}

		if len(rowErrs) > 0 {
			result.Errors = append(result.Errors, rowErrs...)
			continue
		}

		exists, err := s.invoices.ExistsByNumber(ctx, invoiceNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Duplicates++
			continue
		}

		client, err := s.clients.GetByCompanyName(ctx, clientName)
		if errors.Is(err, domain.ErrNotFound) {
			if !autoCreateClients {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Client '%s' not found", rowNum, clientName))
				continue
			}
			client = &domain.Client{CompanyName: clientName}
			if err := s.clients.Create(ctx, client); err != nil {
				return nil, err
			}
			result.NewClientsCreated++
		} else if err != nil {
			return nil, err
		}

		invoice := &domain.Invoice{
			ClientID:      client.ID,
			InvoiceNumber: invoiceNumber,
			InvoiceDate:   invoiceDate,
			DueDate:       dueDate,
			TotalAmount:   amount,
		}
		if err := s.invoices.Create(ctx, invoice); err != nil {
			// Another row in this file may have claimed the number first.
			if errors.Is(err, domain.ErrDuplicateInvoiceNumber) {
				result.Duplicates++
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	return result, nil
}
