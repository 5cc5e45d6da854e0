package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// CatalogItemRepository persistence for the priced work-position catalog.
type CatalogItemRepository interface {
	Create(item *entity.CatalogItem) error
	Update(item *entity.CatalogItem) error
	GetByID(id string) (*entity.CatalogItem, error)
	ListByCompany(companyID string) ([]*entity.CatalogItem, error)
}

// CatalogLineRepository persistence for catalog positions booked on projects.
type CatalogLineRepository interface {
	Create(line *entity.CatalogLine) error
	Delete(id string) error
	ListByProject(projectID string) ([]*entity.CatalogLine, error)
}
