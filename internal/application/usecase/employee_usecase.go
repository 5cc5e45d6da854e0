package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// EmployeeUseCase CRUD for workers.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase builds the use case.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create stores a new active employee.
func (uc *EmployeeUseCase) Create(companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	now := time.Now()
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		HourlyRate: in.HourlyRate,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Update edits an employee.
func (uc *EmployeeUseCase) Update(companyID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	employee.FirstName = in.FirstName
	employee.LastName = in.LastName
	employee.Email = in.Email
	employee.HourlyRate = in.HourlyRate
	employee.Active = in.Active
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Get returns one employee.
func (uc *EmployeeUseCase) Get(companyID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List returns the company's employees.
func (uc *EmployeeUseCase) List(companyID string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(e *entity.Employee, _ int) dto.EmployeeResponse {
		return *toEmployeeResponse(e)
	}), nil
}

func (uc *EmployeeUseCase) owned(companyID, id string) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		HourlyRate: e.HourlyRate,
		Active:     e.Active,
	}
}
