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

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

// TimeEntryRepo implements TimeEntryRepository. hourly_rate is a nullable
// NUMERIC column: NULL scans into a nil pointer, meaning "not billable".
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository builds the adapter.
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

const timeEntryColumns = `id, company_id, project_id, employee_id, date,
       COALESCE(description, ''), hours, hourly_rate, created_at, updated_at`

// Create persists a time entry.
func (r *TimeEntryRepo) Create(t *entity.TimeEntry) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO time_entries (id, company_id, project_id, employee_id, date, description, hours, hourly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.CompanyID, t.ProjectID, t.EmployeeID, t.Date,
		nullIfEmpty(t.Description), t.Hours, t.HourlyRate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// Update persists entry changes.
func (r *TimeEntryRepo) Update(t *entity.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET date = $2, description = $3, hours = $4, hourly_rate = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Date, nullIfEmpty(t.Description), t.Hours, t.HourlyRate, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update time entry: %w", err)
	}
	return nil
}

// Delete removes an entry.
func (r *TimeEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}

// GetByID returns the entry, or (nil, nil) when absent.
func (r *TimeEntryRepo) GetByID(id string) (*entity.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = $1`
	var t entity.TimeEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.ProjectID, &t.EmployeeID, &t.Date,
		&t.Description, &t.Hours, &t.HourlyRate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get time entry: %w", err)
	}
	return &t, nil
}

// ListByProject returns the project's entries in date order.
func (r *TimeEntryRepo) ListByProject(projectID string) ([]*entity.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE project_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.TimeEntry
	for rows.Next() {
		var t entity.TimeEntry
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.ProjectID, &t.EmployeeID, &t.Date,
			&t.Description, &t.Hours, &t.HourlyRate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
