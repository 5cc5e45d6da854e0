// Package report drives control reports (periodic installation inspections):
// CRUD plus PDF generation through the maroto composer.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// PDFGenerator composes the inspection protocol document.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.ControlReport, project *entity.Project, customer *entity.Customer, company *entity.Company) ([]byte, error)
}

// UseCase manages control reports for projects.
type UseCase struct {
	reportRepo   repository.ControlReportRepository
	projectRepo  repository.ProjectRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	generator    PDFGenerator
}

// NewUseCase builds the use case.
func NewUseCase(
	reportRepo repository.ControlReportRepository,
	projectRepo repository.ProjectRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	generator PDFGenerator,
) *UseCase {
	return &UseCase{
		reportRepo:   reportRepo,
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		generator:    generator,
	}
}

// Create stores a new report for the project.
func (uc *UseCase) Create(ctx context.Context, companyID, projectID string, in dto.CreateControlReportRequest) (*dto.ControlReportResponse, error) {
	project, err := uc.ownedProject(companyID, projectID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", domain.ErrValidation)
	}
	now := time.Now()
	rep := &entity.ControlReport{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		ProjectID:          project.ID,
		Number:             in.Number,
		InspectorName:      in.InspectorName,
		Date:               date,
		Items:              itemsFromRequest(in.Items),
		ConclusionMarkdown: in.ConclusionMarkdown,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.reportRepo.Create(rep); err != nil {
		return nil, err
	}
	return toResponse(rep), nil
}

// Update rewrites the report header and item list.
func (uc *UseCase) Update(ctx context.Context, companyID, reportID string, in dto.UpdateControlReportRequest) (*dto.ControlReportResponse, error) {
	rep, err := uc.ownedReport(companyID, reportID)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", domain.ErrValidation)
	}
	rep.InspectorName = in.InspectorName
	rep.Date = date
	rep.Items = itemsFromRequest(in.Items)
	rep.ConclusionMarkdown = in.ConclusionMarkdown
	rep.UpdatedAt = time.Now()
	if err := uc.reportRepo.Update(rep); err != nil {
		return nil, err
	}
	return toResponse(rep), nil
}

// Get returns the report with items.
func (uc *UseCase) Get(ctx context.Context, companyID, reportID string) (*dto.ControlReportResponse, error) {
	rep, err := uc.ownedReport(companyID, reportID)
	if err != nil {
		return nil, err
	}
	return toResponse(rep), nil
}

// ListByProject returns the project's reports, items excluded.
func (uc *UseCase) ListByProject(ctx context.Context, companyID, projectID string) ([]dto.ControlReportResponse, error) {
	if _, err := uc.ownedProject(companyID, projectID); err != nil {
		return nil, err
	}
	reports, err := uc.reportRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ControlReportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, *toResponse(rep))
	}
	return out, nil
}

// PDF composes the protocol document and returns bytes plus a filename.
func (uc *UseCase) PDF(ctx context.Context, companyID, reportID string) ([]byte, string, error) {
	rep, err := uc.ownedReport(companyID, reportID)
	if err != nil {
		return nil, "", err
	}
	project, err := uc.ownedProject(companyID, rep.ProjectID)
	if err != nil {
		return nil, "", err
	}
	customer, err := uc.customerRepo.GetByID(project.CustomerID)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	out, err := uc.generator.GenerateReportPDF(ctx, rep, project, customer, company)
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("report_%s.pdf", rep.Number), nil
}

func (uc *UseCase) ownedProject(companyID, projectID string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return project, nil
}

func (uc *UseCase) ownedReport(companyID, reportID string) (*entity.ControlReport, error) {
	rep, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if rep == nil || rep.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return rep, nil
}

func itemsFromRequest(in []dto.ControlReportItemRequest) []entity.ControlReportItem {
	items := make([]entity.ControlReportItem, 0, len(in))
	for i, item := range in {
		items = append(items, entity.ControlReportItem{
			Position: i + 1,
			Text:     item.Text,
			Result:   item.Result,
			Remark:   item.Remark,
		})
	}
	return items
}

func toResponse(rep *entity.ControlReport) *dto.ControlReportResponse {
	resp := &dto.ControlReportResponse{
		ID:                 rep.ID,
		ProjectID:          rep.ProjectID,
		Number:             rep.Number,
		InspectorName:      rep.InspectorName,
		Date:               rep.Date.Format("2006-01-02"),
		ConclusionMarkdown: rep.ConclusionMarkdown,
		Items:              make([]dto.ControlReportItemResponse, 0, len(rep.Items)),
	}
	for _, item := range rep.Items {
		resp.Items = append(resp.Items, dto.ControlReportItemResponse{
			Position: item.Position,
			Text:     item.Text,
			Result:   item.Result,
			Remark:   item.Remark,
		})
	}
	return resp
}
