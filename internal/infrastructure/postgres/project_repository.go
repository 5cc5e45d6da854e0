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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implements ProjectRepository.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository builds the adapter.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, company_id, customer_id, name, COALESCE(description, ''),
       COALESCE(street, ''), COALESCE(zip_code, ''), COALESCE(city, ''),
       status, vat_rate, created_at, updated_at`

// Create persists a project.
func (r *ProjectRepo) Create(p *entity.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO projects (id, company_id, customer_id, name, description, street, zip_code, city, status, vat_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CompanyID, p.CustomerID, p.Name, nullIfEmpty(p.Description),
		nullIfEmpty(p.Street), nullIfEmpty(p.ZipCode), nullIfEmpty(p.City),
		p.Status, p.VATRate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// Update persists project changes.
func (r *ProjectRepo) Update(p *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, street = $4, zip_code = $5, city = $6,
		    status = $7, vat_rate = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, nullIfEmpty(p.Description), nullIfEmpty(p.Street),
		nullIfEmpty(p.ZipCode), nullIfEmpty(p.City), p.Status, p.VATRate, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// GetByID returns the project, or (nil, nil) when absent.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.CustomerID, &p.Name, &p.Description,
		&p.Street, &p.ZipCode, &p.City, &p.Status, &p.VATRate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// ListByCompany returns all projects of a company.
func (r *ProjectRepo) ListByCompany(companyID string) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.CustomerID, &p.Name, &p.Description,
			&p.Street, &p.ZipCode, &p.City, &p.Status, &p.VATRate,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
