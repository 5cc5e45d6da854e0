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

var _ repository.ControlReportRepository = (*ControlReportRepo)(nil)

// ControlReportRepo implements ControlReportRepository. Report items are
// rewritten wholesale on update; they are small and position-ordered.
type ControlReportRepo struct {
	q Querier
}

// NewControlReportRepository builds the adapter.
func NewControlReportRepository(q Querier) *ControlReportRepo {
	return &ControlReportRepo{q: q}
}

const reportColumns = `id, company_id, project_id, number, inspector_name, date,
       COALESCE(conclusion_md, ''), created_at, updated_at`

// Create persists the report header and its items.
func (r *ControlReportRepo) Create(rep *entity.ControlReport) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	query := `
		INSERT INTO control_reports (id, company_id, project_id, number, inspector_name, date, conclusion_md, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rep.ID, rep.CompanyID, rep.ProjectID, rep.Number, rep.InspectorName,
		rep.Date, nullIfEmpty(rep.ConclusionMarkdown), rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("report number already exists: %w", err)
		}
		return fmt.Errorf("insert control report: %w", err)
	}
	return r.writeItems(rep.ID, rep.Items)
}

// Update persists header changes and rewrites the item list.
func (r *ControlReportRepo) Update(rep *entity.ControlReport) error {
	query := `
		UPDATE control_reports
		SET inspector_name = $2, date = $3, conclusion_md = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rep.ID, rep.InspectorName, rep.Date, nullIfEmpty(rep.ConclusionMarkdown), rep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update control report: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM control_report_items WHERE report_id = $1`, rep.ID); err != nil {
		return fmt.Errorf("clear report items: %w", err)
	}
	return r.writeItems(rep.ID, rep.Items)
}

func (r *ControlReportRepo) writeItems(reportID string, items []entity.ControlReportItem) error {
	query := `
		INSERT INTO control_report_items (id, report_id, position, text, result, remark)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range items {
		item := &items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.ReportID = reportID
		_, err := r.q.Exec(context.Background(), query,
			item.ID, item.ReportID, item.Position, item.Text, item.Result, nullIfEmpty(item.Remark),
		)
		if err != nil {
			return fmt.Errorf("insert report item: %w", err)
		}
	}
	return nil
}

// GetByID returns the report with items in position order, or (nil, nil).
func (r *ControlReportRepo) GetByID(id string) (*entity.ControlReport, error) {
	query := `SELECT ` + reportColumns + ` FROM control_reports WHERE id = $1`
	var rep entity.ControlReport
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.CompanyID, &rep.ProjectID, &rep.Number, &rep.InspectorName,
		&rep.Date, &rep.ConclusionMarkdown, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get control report: %w", err)
	}
	items, err := r.itemsByReport(rep.ID)
	if err != nil {
		return nil, err
	}
	rep.Items = items
	return &rep, nil
}

// ListByProject returns report headers in date order, items excluded.
func (r *ControlReportRepo) ListByProject(projectID string) ([]*entity.ControlReport, error) {
	query := `SELECT ` + reportColumns + ` FROM control_reports WHERE project_id = $1 ORDER BY date, number`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list control reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.ControlReport
	for rows.Next() {
		var rep entity.ControlReport
		if err := rows.Scan(&rep.ID, &rep.CompanyID, &rep.ProjectID, &rep.Number, &rep.InspectorName,
			&rep.Date, &rep.ConclusionMarkdown, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan control report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

func (r *ControlReportRepo) itemsByReport(reportID string) ([]entity.ControlReportItem, error) {
	query := `
		SELECT id, report_id, position, text, result, COALESCE(remark, '')
		FROM control_report_items WHERE report_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, reportID)
	if err != nil {
		return nil, fmt.Errorf("list report items: %w", err)
	}
	defer rows.Close()
	var items []entity.ControlReportItem
	for rows.Next() {
		var item entity.ControlReportItem
		if err := rows.Scan(&item.ID, &item.ReportID, &item.Position, &item.Text, &item.Result, &item.Remark); err != nil {
			return nil, fmt.Errorf("scan report item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
