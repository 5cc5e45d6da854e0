package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// CustomerRepository persistence for billing recipients.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	Update(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListByCompany(companyID string) ([]*entity.Customer, error)
}
