package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// ProjectUseCase CRUD for projects. New projects take the company default
// VAT rate unless the request overrides it.
type ProjectUseCase struct {
	repo           repository.ProjectRepository
	customerRepo   repository.CustomerRepository
	defaultVATRate decimal.Decimal
}

// NewProjectUseCase builds the use case.
func NewProjectUseCase(repo repository.ProjectRepository, customerRepo repository.CustomerRepository, defaultVATRate decimal.Decimal) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, customerRepo: customerRepo, defaultVATRate: defaultVATRate}
}

// Create stores a new project in OPEN state.
func (uc *ProjectUseCase) Create(companyID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	vatRate := uc.defaultVATRate
	if in.VATRate != nil {
		vatRate = *in.VATRate
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CustomerID:  in.CustomerID,
		Name:        in.Name,
		Description: in.Description,
		Street:      in.Street,
		ZipCode:     in.ZipCode,
		City:        in.City,
		Status:      entity.ProjectStatusOpen,
		VATRate:     vatRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Update edits a project; a status change must follow the lifecycle order.
func (uc *ProjectUseCase) Update(companyID, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	project.Name = in.Name
	project.Description = in.Description
	project.Street = in.Street
	project.ZipCode = in.ZipCode
	project.City = in.City
	if in.Status != "" {
		project.Status = in.Status
	}
	if in.VATRate != nil {
		project.VATRate = *in.VATRate
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Get returns one project.
func (uc *ProjectUseCase) Get(companyID, id string) (*dto.ProjectResponse, error) {
	project, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List returns the company's projects.
func (uc *ProjectUseCase) List(companyID string) ([]dto.ProjectResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(p *entity.Project, _ int) dto.ProjectResponse {
		return *toProjectResponse(p)
	}), nil
}

func (uc *ProjectUseCase) owned(companyID, id string) (*entity.Project, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return project, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		Name:        p.Name,
		Description: p.Description,
		Street:      p.Street,
		ZipCode:     p.ZipCode,
		City:        p.City,
		Status:      p.Status,
		VATRate:     p.VATRate,
	}
}
