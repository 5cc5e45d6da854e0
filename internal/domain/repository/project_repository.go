package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// ProjectRepository persistence for construction/installation projects.
// GetByID returns (nil, nil) when the project does not exist; callers map
// that to domain.ErrNotFound.
type ProjectRepository interface {
	Create(project *entity.Project) error
	Update(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	ListByCompany(companyID string) ([]*entity.Project, error)
}
