package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// CompanyRepository access to the contractor's master data.
type CompanyRepository interface {
	Create(company *entity.Company) error
	Update(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
}
