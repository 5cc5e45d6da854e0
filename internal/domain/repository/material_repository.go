package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// MaterialEntryRepository persistence for material consumed on projects.
type MaterialEntryRepository interface {
	Create(entry *entity.MaterialEntry) error
	Update(entry *entity.MaterialEntry) error
	Delete(id string) error
	GetByID(id string) (*entity.MaterialEntry, error)
	ListByProject(projectID string) ([]*entity.MaterialEntry, error)
}
