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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements CompanyRepository.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, COALESCE(street, ''), COALESCE(zip_code, ''), COALESCE(city, ''),
       COALESCE(phone, ''), COALESCE(email, ''), COALESCE(vat_number, ''), COALESCE(logo_url, ''),
       created_at, updated_at`

// Create persists the contractor's master data.
func (r *CompanyRepo) Create(c *entity.Company) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO companies (id, name, street, zip_code, city, phone, email, vat_number, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.Street), nullIfEmpty(c.ZipCode), nullIfEmpty(c.City),
		nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.VATNumber), nullIfEmpty(c.LogoURL),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update persists company changes.
func (r *CompanyRepo) Update(c *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, street = $3, zip_code = $4, city = $5, phone = $6,
		    email = $7, vat_number = $8, logo_url = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.Street), nullIfEmpty(c.ZipCode), nullIfEmpty(c.City),
		nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.VATNumber), nullIfEmpty(c.LogoURL),
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// GetByID returns the company, or (nil, nil) when absent.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Street, &c.ZipCode, &c.City,
		&c.Phone, &c.Email, &c.VATNumber, &c.LogoURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
