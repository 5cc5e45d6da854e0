package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/billing"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// MaterialUseCase CRUD for material consumed on projects.
type MaterialUseCase struct {
	repo        repository.MaterialEntryRepository
	projectRepo repository.ProjectRepository
}

// NewMaterialUseCase builds the use case.
func NewMaterialUseCase(repo repository.MaterialEntryRepository, projectRepo repository.ProjectRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, projectRepo: projectRepo}
}

// Create stores a material entry against a project.
func (uc *MaterialUseCase) Create(companyID, projectID string, in dto.CreateMaterialEntryRequest) (*dto.MaterialEntryResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", domain.ErrValidation)
	}
	now := time.Now()
	entry := &entity.MaterialEntry{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		ProjectID:        projectID,
		Name:             in.Name,
		Unit:             in.Unit,
		Quantity:         in.Quantity,
		UnitPrice:        in.UnitPrice,
		SurchargePercent: in.SurchargePercent,
		AdditionalCost:   in.AdditionalCost,
		Date:             date,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toMaterialResponse(entry), nil
}

// Update edits an entry.
func (uc *MaterialUseCase) Update(companyID, id string, in dto.UpdateMaterialEntryRequest) (*dto.MaterialEntryResponse, error) {
	entry, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", domain.ErrValidation)
	}
	entry.Name = in.Name
	entry.Unit = in.Unit
	entry.Quantity = in.Quantity
	entry.UnitPrice = in.UnitPrice
	entry.SurchargePercent = in.SurchargePercent
	entry.AdditionalCost = in.AdditionalCost
	entry.Date = date
	entry.UpdatedAt = time.Now()
	if err := uc.repo.Update(entry); err != nil {
		return nil, err
	}
	return toMaterialResponse(entry), nil
}

// Delete removes an entry.
func (uc *MaterialUseCase) Delete(companyID, id string) error {
	if _, err := uc.owned(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// ListByProject returns the project's material entries.
func (uc *MaterialUseCase) ListByProject(companyID, projectID string) ([]dto.MaterialEntryResponse, error) {
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
	return lo.Map(list, func(m *entity.MaterialEntry, _ int) dto.MaterialEntryResponse {
		return *toMaterialResponse(m)
	}), nil
}

func (uc *MaterialUseCase) owned(companyID, id string) (*entity.MaterialEntry, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func toMaterialResponse(m *entity.MaterialEntry) *dto.MaterialEntryResponse {
	return &dto.MaterialEntryResponse{
		ID:               m.ID,
		ProjectID:        m.ProjectID,
		Name:             m.Name,
		Unit:             m.Unit,
		Quantity:         m.Quantity,
		UnitPrice:        m.UnitPrice,
		SurchargePercent: m.SurchargePercent,
		AdditionalCost:   m.AdditionalCost,
		Date:             m.Date.Format("2006-01-02"),
		Total:            billing.MaterialLineTotal(m.Quantity, m.UnitPrice, m.SurchargePercent, m.AdditionalCost),
	}
}
