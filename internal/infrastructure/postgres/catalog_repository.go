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

var _ repository.CatalogItemRepository = (*CatalogItemRepo)(nil)
var _ repository.CatalogLineRepository = (*CatalogLineRepo)(nil)

// CatalogItemRepo implements CatalogItemRepository.
type CatalogItemRepo struct {
	q Querier
}

// NewCatalogItemRepository builds the adapter.
func NewCatalogItemRepository(q Querier) *CatalogItemRepo {
	return &CatalogItemRepo{q: q}
}

// Create persists a catalog item.
func (r *CatalogItemRepo) Create(item *entity.CatalogItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO catalog_items (id, company_id, code, name, description, unit, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.Code, item.Name, nullIfEmpty(item.Description),
		item.Unit, item.UnitPrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("catalog code already exists: %w", err)
		}
		return fmt.Errorf("insert catalog item: %w", err)
	}
	return nil
}

// Update persists item changes.
func (r *CatalogItemRepo) Update(item *entity.CatalogItem) error {
	query := `
		UPDATE catalog_items
		SET code = $2, name = $3, description = $4, unit = $5, unit_price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, nullIfEmpty(item.Description),
		item.Unit, item.UnitPrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update catalog item: %w", err)
	}
	return nil
}

// GetByID returns the item, or (nil, nil) when absent.
func (r *CatalogItemRepo) GetByID(id string) (*entity.CatalogItem, error) {
	query := `
		SELECT id, company_id, code, name, COALESCE(description, ''), unit, unit_price, created_at, updated_at
		FROM catalog_items WHERE id = $1`
	var item entity.CatalogItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.CompanyID, &item.Code, &item.Name, &item.Description,
		&item.Unit, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog item: %w", err)
	}
	return &item, nil
}

// ListByCompany returns the catalog in code order.
func (r *CatalogItemRepo) ListByCompany(companyID string) ([]*entity.CatalogItem, error) {
	query := `
		SELECT id, company_id, code, name, COALESCE(description, ''), unit, unit_price, created_at, updated_at
		FROM catalog_items WHERE company_id = $1 ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogItem
	for rows.Next() {
		var item entity.CatalogItem
		if err := rows.Scan(&item.ID, &item.CompanyID, &item.Code, &item.Name, &item.Description,
			&item.Unit, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// CatalogLineRepo implements CatalogLineRepository.
type CatalogLineRepo struct {
	q Querier
}

// NewCatalogLineRepository builds the adapter.
func NewCatalogLineRepository(q Querier) *CatalogLineRepo {
	return &CatalogLineRepo{q: q}
}

// Create persists a project catalog line (price copied from the item).
func (r *CatalogLineRepo) Create(line *entity.CatalogLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO catalog_lines (id, project_id, catalog_item_id, name, unit, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ProjectID, line.CatalogItemID, line.Name, line.Unit,
		line.Quantity, line.UnitPrice, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert catalog line: %w", err)
	}
	return nil
}

// Delete removes a line.
func (r *CatalogLineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM catalog_lines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog line: %w", err)
	}
	return nil
}

// ListByProject returns the project's catalog lines in insertion order.
func (r *CatalogLineRepo) ListByProject(projectID string) ([]*entity.CatalogLine, error) {
	query := `
		SELECT id, project_id, catalog_item_id, name, unit, quantity, unit_price, created_at
		FROM catalog_lines WHERE project_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list catalog lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogLine
	for rows.Next() {
		var line entity.CatalogLine
		if err := rows.Scan(&line.ID, &line.ProjectID, &line.CatalogItemID, &line.Name,
			&line.Unit, &line.Quantity, &line.UnitPrice, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog line: %w", err)
		}
		list = append(list, &line)
	}
	return list, rows.Err()
}
