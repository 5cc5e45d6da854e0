package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// TimeEntryRepository persistence for worked hours.
// ListByProject returns an empty slice (not an error) for a project
// without entries.
type TimeEntryRepository interface {
	Create(entry *entity.TimeEntry) error
	Update(entry *entity.TimeEntry) error
	Delete(id string) error
	GetByID(id string) (*entity.TimeEntry, error)
	ListByProject(projectID string) ([]*entity.TimeEntry, error)
}
