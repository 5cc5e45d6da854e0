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

var _ repository.MaterialEntryRepository = (*MaterialEntryRepo)(nil)

// MaterialEntryRepo implements MaterialEntryRepository.
type MaterialEntryRepo struct {
	q Querier
}

// NewMaterialEntryRepository builds the adapter.
func NewMaterialEntryRepository(q Querier) *MaterialEntryRepo {
	return &MaterialEntryRepo{q: q}
}

const materialColumns = `id, company_id, project_id, name, COALESCE(unit, ''),
       quantity, unit_price, surcharge_percent, additional_cost, date, created_at, updated_at`

// Create persists a material entry.
func (r *MaterialEntryRepo) Create(m *entity.MaterialEntry) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO material_entries (id, company_id, project_id, name, unit, quantity, unit_price, surcharge_percent, additional_cost, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.ProjectID, m.Name, nullIfEmpty(m.Unit),
		m.Quantity, m.UnitPrice, m.SurchargePercent, m.AdditionalCost,
		m.Date, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material entry: %w", err)
	}
	return nil
}

// Update persists entry changes.
func (r *MaterialEntryRepo) Update(m *entity.MaterialEntry) error {
	query := `
		UPDATE material_entries
		SET name = $2, unit = $3, quantity = $4, unit_price = $5,
		    surcharge_percent = $6, additional_cost = $7, date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, nullIfEmpty(m.Unit), m.Quantity, m.UnitPrice,
		m.SurchargePercent, m.AdditionalCost, m.Date, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material entry: %w", err)
	}
	return nil
}

// Delete removes an entry.
func (r *MaterialEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material entry: %w", err)
	}
	return nil
}

// GetByID returns the entry, or (nil, nil) when absent.
func (r *MaterialEntryRepo) GetByID(id string) (*entity.MaterialEntry, error) {
	query := `SELECT ` + materialColumns + ` FROM material_entries WHERE id = $1`
	var m entity.MaterialEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.ProjectID, &m.Name, &m.Unit,
		&m.Quantity, &m.UnitPrice, &m.SurchargePercent, &m.AdditionalCost,
		&m.Date, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material entry: %w", err)
	}
	return &m, nil
}

// ListByProject returns the project's material entries in date order.
func (r *MaterialEntryRepo) ListByProject(projectID string) ([]*entity.MaterialEntry, error) {
	query := `SELECT ` + materialColumns + ` FROM material_entries WHERE project_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list material entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialEntry
	for rows.Next() {
		var m entity.MaterialEntry
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ProjectID, &m.Name, &m.Unit,
			&m.Quantity, &m.UnitPrice, &m.SurchargePercent, &m.AdditionalCost,
			&m.Date, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material entry: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
