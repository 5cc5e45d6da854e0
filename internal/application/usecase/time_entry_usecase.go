package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// TimeEntryUseCase CRUD for worked hours.
//
// Rate resolution on create: an explicit rate in the request wins; a nil
// rate takes the employee's default; an inactive default of zero still
// yields a rate of zero, which bills the hours at nothing rather than
// dropping them.
type TimeEntryUseCase struct {
	repo         repository.TimeEntryRepository
	projectRepo  repository.ProjectRepository
	employeeRepo repository.EmployeeRepository
}

// NewTimeEntryUseCase builds the use case.
func NewTimeEntryUseCase(
	repo repository.TimeEntryRepository,
	projectRepo repository.ProjectRepository,
	employeeRepo repository.EmployeeRepository,
) *TimeEntryUseCase {
	return &TimeEntryUseCase{repo: repo, projectRepo: projectRepo, employeeRepo: employeeRepo}
}

// Create stores hours against a project.
func (uc *TimeEntryUseCase) Create(companyID, projectID string, in dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", domain.ErrValidation)
	}
	rate := in.HourlyRate
	if rate == nil {
		r := employee.HourlyRate
		rate = &r
	}
	now := time.Now()
	entry := &entity.TimeEntry{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProjectID:   projectID,
		EmployeeID:  in.EmployeeID,
		Date:        date,
		Description: in.Description,
		Hours:       in.Hours,
		HourlyRate:  rate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

// Update edits an entry.
func (uc *TimeEntryUseCase) Update(companyID, id string, in dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	entry, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", domain.ErrValidation)
	}
	entry.Date = date
	entry.Description = in.Description
	entry.Hours = in.Hours
	entry.HourlyRate = in.HourlyRate
	entry.UpdatedAt = time.Now()
	if err := uc.repo.Update(entry); err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

// Delete removes an entry.
func (uc *TimeEntryUseCase) Delete(companyID, id string) error {
	if _, err := uc.owned(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// ListByProject returns the project's entries.
func (uc *TimeEntryUseCase) ListByProject(companyID, projectID string) ([]dto.TimeEntryResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(t *entity.TimeEntry, _ int) dto.TimeEntryResponse {
		return *toTimeEntryResponse(t)
	}), nil
}

func (uc *TimeEntryUseCase) owned(companyID, id string) (*entity.TimeEntry, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func toTimeEntryResponse(t *entity.TimeEntry) *dto.TimeEntryResponse {
	var rate *decimal.Decimal
	if t.HourlyRate != nil {
		r := *t.HourlyRate
		rate = &r
	}
	return &dto.TimeEntryResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		EmployeeID:     t.EmployeeID,
		Date:           t.Date.Format("2006-01-02"),
		Description:    t.Description,
		Hours:          t.Hours,
		HourlyRate:     rate,
		BillableAmount: t.BillableAmount(),
	}
}
