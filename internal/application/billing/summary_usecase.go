package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/billing"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// SummaryUseCase aggregates a project's material, catalog and time records
// into a transient billing summary. Nothing is persisted; every call reads
// the current records and derives all totals fresh.
type SummaryUseCase struct {
	projectRepo  repository.ProjectRepository
	materialRepo repository.MaterialEntryRepository
	catalogRepo  repository.CatalogLineRepository
	timeRepo     repository.TimeEntryRepository
	employeeRepo repository.EmployeeRepository
}

// NewSummaryUseCase builds the aggregator.
func NewSummaryUseCase(
	projectRepo repository.ProjectRepository,
	materialRepo repository.MaterialEntryRepository,
	catalogRepo repository.CatalogLineRepository,
	timeRepo repository.TimeEntryRepository,
	employeeRepo repository.EmployeeRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		projectRepo:  projectRepo,
		materialRepo: materialRepo,
		catalogRepo:  catalogRepo,
		timeRepo:     timeRepo,
		employeeRepo: employeeRepo,
	}
}

// Summarize computes the billing summary for a project.
//
// Material lines are valued quantity x price x (1 + surcharge/100) plus the
// flat additional cost; catalog lines quantity x copied price; time lines
// hours x rate, where a missing rate contributes zero. The breakdown keeps
// the surcharge and additional-cost portions visible separately.
func (uc *SummaryUseCase) Summarize(ctx context.Context, companyID, projectID string) (*billing.Summary, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	materials, err := uc.materialRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("load material entries: %w", err)
	}
	catalogLines, err := uc.catalogRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("load catalog lines: %w", err)
	}
	timeEntries, err := uc.timeRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("load time entries: %w", err)
	}

	summary := &billing.Summary{ProjectID: projectID}

	var materialCost, surchargeTotal, additionalTotal decimal.Decimal
	for _, m := range materials {
		base := billing.LineTotal(m.Quantity, m.UnitPrice)
		total := billing.MaterialLineTotal(m.Quantity, m.UnitPrice, m.SurchargePercent, m.AdditionalCost)
		item := billing.LineItem{
			Description: m.Name,
			Unit:        m.Unit,
			Quantity:    m.Quantity,
			UnitPrice:   m.UnitPrice,
			Total:       total,
		}
		summary.MaterialItems = append(summary.MaterialItems, item)
		materialCost = materialCost.Add(base)
		surchargeTotal = surchargeTotal.Add(total.Sub(base).Sub(m.AdditionalCost))
		additionalTotal = additionalTotal.Add(m.AdditionalCost)
		summary.MaterialTotal = summary.MaterialTotal.Add(total)
	}

	var catalogCost decimal.Decimal
	for _, line := range catalogLines {
		item := billing.NewLineItem(line.Name, line.Unit, line.Quantity, line.UnitPrice)
		summary.CatalogItems = append(summary.CatalogItems, item)
		catalogCost = catalogCost.Add(item.Total)
		summary.MaterialTotal = summary.MaterialTotal.Add(item.Total)
	}

	var serviceCost decimal.Decimal
	for _, t := range timeEntries {
		desc := t.Description
		if desc == "" {
			if emp, err := uc.employeeRepo.GetByID(t.EmployeeID); err == nil && emp != nil {
				desc = emp.FullName()
			}
		}
		rate := decimal.Zero
		if t.HourlyRate != nil {
			rate = *t.HourlyRate
		}
		item := billing.LineItem{
			Description: desc,
			Unit:        "h",
			Quantity:    t.Hours,
			UnitPrice:   rate,
			Total:       t.BillableAmount(),
		}
		summary.TimeItems = append(summary.TimeItems, item)
		serviceCost = serviceCost.Add(item.Total)
		summary.TimeTotal = summary.TimeTotal.Add(item.Total)
	}

	summary.Total = summary.MaterialTotal.Add(summary.TimeTotal)
	summary.Breakdown = billing.NewCostBreakdown(serviceCost, catalogCost, materialCost, surchargeTotal, additionalTotal)
	return summary, nil
}
