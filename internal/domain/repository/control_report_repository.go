package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// ControlReportRepository persistence for inspection protocols.
// GetByID loads the report including its items in position order.
type ControlReportRepository interface {
	Create(report *entity.ControlReport) error
	Update(report *entity.ControlReport) error
	GetByID(id string) (*entity.ControlReport, error)
	ListByProject(projectID string) ([]*entity.ControlReport, error)
}
