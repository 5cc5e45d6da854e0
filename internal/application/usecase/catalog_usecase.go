package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/billing"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// CatalogUseCase manages the priced work-position catalog and the lines
// booking catalog positions onto projects.
type CatalogUseCase struct {
	itemRepo    repository.CatalogItemRepository
	lineRepo    repository.CatalogLineRepository
	projectRepo repository.ProjectRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(
	itemRepo repository.CatalogItemRepository,
	lineRepo repository.CatalogLineRepository,
	projectRepo repository.ProjectRepository,
) *CatalogUseCase {
	return &CatalogUseCase{itemRepo: itemRepo, lineRepo: lineRepo, projectRepo: projectRepo}
}

// CreateItem stores a catalog position.
func (uc *CatalogUseCase) CreateItem(companyID string, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	now := time.Now()
	item := &entity.CatalogItem{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		UnitPrice:   in.UnitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// UpdateItem edits a catalog position. Existing project lines keep the
// price that was copied when they were booked.
func (uc *CatalogUseCase) UpdateItem(companyID, id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	item, err := uc.ownedItem(companyID, id)
	if err != nil {
		return nil, err
	}
	item.Code = in.Code
	item.Name = in.Name
	item.Description = in.Description
	item.Unit = in.Unit
	item.UnitPrice = in.UnitPrice
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// ListItems returns the company catalog in code order.
func (uc *CatalogUseCase) ListItems(companyID string) ([]dto.CatalogItemResponse, error) {
	list, err := uc.itemRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(i *entity.CatalogItem, _ int) dto.CatalogItemResponse {
		return *toCatalogItemResponse(i)
	}), nil
}

// AddLine books a catalog position onto a project, copying the current
// unit price so later catalog edits leave the project untouched.
func (uc *CatalogUseCase) AddLine(companyID, projectID string, in dto.AddCatalogLineRequest) (*dto.CatalogLineResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	item, err := uc.ownedItem(companyID, in.CatalogItemID)
	if err != nil {
		return nil, err
	}
	line := &entity.CatalogLine{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		CatalogItemID: item.ID,
		Name:          item.Name,
		Unit:          item.Unit,
		Quantity:      in.Quantity,
		UnitPrice:     item.UnitPrice,
		CreatedAt:     time.Now(),
	}
	if err := uc.lineRepo.Create(line); err != nil {
		return nil, err
	}
	return toCatalogLineResponse(line), nil
}

// RemoveLine deletes a project catalog line.
func (uc *CatalogUseCase) RemoveLine(companyID, projectID, lineID string) error {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil || project.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.lineRepo.Delete(lineID)
}

// ListLines returns the project's catalog lines.
func (uc *CatalogUseCase) ListLines(companyID, projectID string) ([]dto.CatalogLineResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.lineRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(l *entity.CatalogLine, _ int) dto.CatalogLineResponse {
		return *toCatalogLineResponse(l)
	}), nil
}

func (uc *CatalogUseCase) ownedItem(companyID, id string) (*entity.CatalogItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func toCatalogItemResponse(i *entity.CatalogItem) *dto.CatalogItemResponse {
	return &dto.CatalogItemResponse{
		ID:          i.ID,
		Code:        i.Code,
		Name:        i.Name,
		Description: i.Description,
		Unit:        i.Unit,
		UnitPrice:   i.UnitPrice,
	}
}

func toCatalogLineResponse(l *entity.CatalogLine) *dto.CatalogLineResponse {
	return &dto.CatalogLineResponse{
		ID:            l.ID,
		ProjectID:     l.ProjectID,
		CatalogItemID: l.CatalogItemID,
		Name:          l.Name,
		Unit:          l.Unit,
		Quantity:      l.Quantity,
		UnitPrice:     l.UnitPrice,
		Total:         billing.LineTotal(l.Quantity, l.UnitPrice),
	}
}
