package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// EmployeeRepository persistence for workers.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	Update(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	ListByCompany(companyID string) ([]*entity.Employee, error)
}
