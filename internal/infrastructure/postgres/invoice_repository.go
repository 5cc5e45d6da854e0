package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, company_id, customer_id, project_id, number, date, due_date, status,
		                      vat_rate, net_total, vat_total, gross_total, terms_markdown, footer_markdown,
		                      issued_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.ProjectID, invoice.Number,
		invoice.Date, invoice.DueDate, invoice.Status,
		invoice.VATRate, invoice.NetTotal, invoice.VATTotal, invoice.GrossTotal,
		nullIfEmpty(invoice.TermsMarkdown), nullIfEmpty(invoice.FooterMarkdown),
		invoice.IssuedAt, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update persists header changes (status transitions, totals, dates).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET status          = $2,
		    number          = $3,
		    date            = $4,
		    due_date        = $5,
		    vat_rate        = $6,
		    net_total       = $7,
		    vat_total       = $8,
		    gross_total     = $9,
		    terms_markdown  = $10,
		    footer_markdown = $11,
		    issued_at       = COALESCE($12, issued_at),
		    updated_at      = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Status, invoice.Number, invoice.Date, invoice.DueDate,
		invoice.VATRate, invoice.NetTotal, invoice.VATTotal, invoice.GrossTotal,
		nullIfEmpty(invoice.TermsMarkdown), nullIfEmpty(invoice.FooterMarkdown),
		invoice.IssuedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

const invoiceColumns = `id, company_id, customer_id, project_id, number, date, due_date, status,
       vat_rate, net_total, vat_total, gross_total,
       COALESCE(terms_markdown, ''), COALESCE(footer_markdown, ''),
       issued_at, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.ProjectID, &inv.Number,
		&inv.Date, &inv.DueDate, &inv.Status,
		&inv.VATRate, &inv.NetTotal, &inv.VATTotal, &inv.GrossTotal,
		&inv.TermsMarkdown, &inv.FooterMarkdown,
		&inv.IssuedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByID returns the full invoice header, or (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByCompany returns all invoices of a company, newest first.
func (r *InvoiceRepo) ListByCompany(companyID string) ([]*entity.Invoice, error) {
	return r.list(`SELECT `+invoiceColumns+` FROM invoices WHERE company_id = $1 ORDER BY date DESC, number DESC`, companyID)
}

// ListByProject returns all invoices of a project, newest first.
func (r *InvoiceRepo) ListByProject(projectID string) ([]*entity.Invoice, error) {
	return r.list(`SELECT `+invoiceColumns+` FROM invoices WHERE project_id = $1 ORDER BY date DESC, number DESC`, projectID)
}

func (r *InvoiceRepo) list(query string, arg any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// CreateItem persists one snapshot line.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_items (id, invoice_id, position, kind, description, unit, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.Position, item.Kind, item.Description,
		item.Unit, item.Quantity, item.UnitPrice, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// ReplaceItems swaps the full snapshot of an invoice. Used when a draft is
// re-aggregated or frozen at issuance; run inside a transaction.
func (r *InvoiceRepo) ReplaceItems(invoiceID string, items []*entity.InvoiceItem) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID); err != nil {
		return fmt.Errorf("clear invoice items: %w", err)
	}
	for _, item := range items {
		item.InvoiceID = invoiceID
		if err := r.CreateItem(item); err != nil {
			return err
		}
	}
	return nil
}

// GetItemsByInvoiceID returns the snapshot lines in position order.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, position, kind, description, COALESCE(unit, ''), quantity, unit_price, total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position, id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Position, &it.Kind, &it.Description,
			&it.Unit, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
