package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/billing"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// InvoiceUseCase drives the invoice lifecycle: DRAFT -> ISSUED -> {PAID,
// CANCELLED}. A draft's items are recomputed from live project data on every
// read; issuing freezes the items as a snapshot in the same transaction that
// flips the status, and all later reads come from that snapshot.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	projectRepo repository.ProjectRepository
	summaryUC   *SummaryUseCase
	txRunner    TxRunner
	dueInDays   int
}

// NewInvoiceUseCase builds the use case. dueInDays is the default payment
// term applied when a draft request does not set one.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	projectRepo repository.ProjectRepository,
	summaryUC *SummaryUseCase,
	txRunner TxRunner,
	dueInDays int,
) *InvoiceUseCase {
	if dueInDays <= 0 {
		dueInDays = 30
	}
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		projectRepo: projectRepo,
		summaryUC:   summaryUC,
		txRunner:    txRunner,
		dueInDays:   dueInDays,
	}
}

// CreateDraft aggregates the project and stores a DRAFT invoice. The header
// totals reflect the aggregation at creation time; they are recomputed at
// issuance so drafts track the project until they are frozen.
func (uc *InvoiceUseCase) CreateDraft(ctx context.Context, companyID, projectID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	summary, err := uc.summaryUC.Summarize(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}

	vatRate := project.VATRate
	if in.VATRate != nil {
		vatRate = *in.VATRate
	}
	dueInDays := uc.dueInDays
	if in.DueInDays > 0 {
		dueInDays = in.DueInDays
	}

	now := time.Now()
	vat := billing.VATAmount(summary.Total, vatRate)
	inv := &entity.Invoice{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		CustomerID:     project.CustomerID,
		ProjectID:      projectID,
		Date:           now,
		DueDate:        now.AddDate(0, 0, dueInDays),
		Status:         entity.InvoiceStatusDraft,
		VATRate:        vatRate,
		NetTotal:       summary.Total,
		VATTotal:       vat,
		GrossTotal:     billing.Gross(summary.Total, vat),
		TermsMarkdown:  in.TermsMarkdown,
		FooterMarkdown: in.FooterMarkdown,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	items := itemsFromSummary(inv.ID, summary)
	return uc.toResponse(inv, items), nil
}

// Issue freezes a draft: the aggregation runs one last time, the item
// snapshot and the header update commit in a single transaction, and the
// invoice gets its number and issue timestamp.
func (uc *InvoiceUseCase) Issue(ctx context.Context, companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.loadOwned(companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidTransition(inv.Status, entity.InvoiceStatusIssued) {
		return nil, fmt.Errorf("issue %s invoice: %w", inv.Status, domain.ErrConflict)
	}

	now := time.Now()
	inv.Number = fmt.Sprintf("RE-%d-%d", now.Year(), now.Unix()%1_000_000)
	inv.IssuedAt = &now
	return uc.freeze(ctx, companyID, inv, entity.InvoiceStatusIssued)
}

// MarkPaid transitions an issued invoice to PAID.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	return uc.transition(ctx, companyID, invoiceID, entity.InvoiceStatusPaid)
}

// Cancel transitions a draft or issued invoice to CANCELLED.
func (uc *InvoiceUseCase) Cancel(ctx context.Context, companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	return uc.transition(ctx, companyID, invoiceID, entity.InvoiceStatusCancelled)
}

func (uc *InvoiceUseCase) transition(ctx context.Context, companyID, invoiceID, to string) (*dto.InvoiceResponse, error) {
	inv, err := uc.loadOwned(companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidTransition(inv.Status, to) {
		return nil, fmt.Errorf("transition %s -> %s: %w", inv.Status, to, domain.ErrConflict)
	}
	if inv.Mutable() {
		// Leaving DRAFT makes the invoice immutable. Freeze the current
		// aggregation so a cancelled draft keeps its items.
		return uc.freeze(ctx, companyID, inv, to)
	}
	inv.Status = to
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, items), nil
}

// freeze runs the aggregation one last time and commits the item snapshot
// together with the header update in a single transaction, so an invoice
// leaving DRAFT carries its items and matching totals into the immutable
// states.
func (uc *InvoiceUseCase) freeze(ctx context.Context, companyID string, inv *entity.Invoice, to string) (*dto.InvoiceResponse, error) {
	summary, err := uc.summaryUC.Summarize(ctx, companyID, inv.ProjectID)
	if err != nil {
		return nil, err
	}
	items := itemsFromSummary(inv.ID, summary)
	applyTotals(inv, summary.Total)
	inv.Status = to
	inv.UpdatedAt = time.Now()

	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Update(inv); err != nil {
			return err
		}
		return invoiceRepo.ReplaceItems(inv.ID, items)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, items), nil
}

// Get returns the invoice with its items. Drafts are re-aggregated from the
// project's live records; every other state reads the persisted snapshot.
func (uc *InvoiceUseCase) Get(ctx context.Context, companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.loadOwned(companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemsFor(ctx, companyID, inv)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, items), nil
}

// ListByProject returns the project's invoice headers, items excluded.
func (uc *InvoiceUseCase) ListByProject(ctx context.Context, companyID, projectID string) ([]dto.InvoiceResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	invoices, err := uc.invoiceRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *uc.toResponse(inv, nil))
	}
	return out, nil
}

// Invoice loads the owned entity with its effective items, for callers that
// need the raw entity rather than a response DTO (document generation).
func (uc *InvoiceUseCase) Invoice(ctx context.Context, companyID, invoiceID string) (*entity.Invoice, []*entity.InvoiceItem, error) {
	inv, err := uc.loadOwned(companyID, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	items, err := uc.itemsFor(ctx, companyID, inv)
	if err != nil {
		return nil, nil, err
	}
	return inv, items, nil
}

func (uc *InvoiceUseCase) loadOwned(companyID, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (uc *InvoiceUseCase) itemsFor(ctx context.Context, companyID string, inv *entity.Invoice) ([]*entity.InvoiceItem, error) {
	if inv.Mutable() {
		summary, err := uc.summaryUC.Summarize(ctx, companyID, inv.ProjectID)
		if err != nil {
			return nil, err
		}
		// The header totals must mirror the live aggregation the items came
		// from; the stored creation-time totals are stale by now.
		applyTotals(inv, summary.Total)
		return itemsFromSummary(inv.ID, summary), nil
	}
	return uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
}

// applyTotals sets the header totals for the given net amount using the
// invoice's own VAT rate.
func applyTotals(inv *entity.Invoice, net decimal.Decimal) {
	vat := billing.VATAmount(net, inv.VATRate)
	inv.NetTotal = net
	inv.VATTotal = vat
	inv.GrossTotal = billing.Gross(net, vat)
}

// itemsFromSummary flattens an aggregation into positioned invoice lines:
// materials first, then catalog positions, then labor.
func itemsFromSummary(invoiceID string, summary *billing.Summary) []*entity.InvoiceItem {
	var items []*entity.InvoiceItem
	appendItems := func(kind string, lines []billing.LineItem) {
		for _, line := range lines {
			items = append(items, &entity.InvoiceItem{
				ID:          uuid.New().String(),
				InvoiceID:   invoiceID,
				Position:    len(items) + 1,
				Kind:        kind,
				Description: line.Description,
				Unit:        line.Unit,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				Total:       line.Total,
			})
		}
	}
	appendItems(entity.InvoiceItemKindMaterial, summary.MaterialItems)
	appendItems(entity.InvoiceItemKindCatalog, summary.CatalogItems)
	appendItems(entity.InvoiceItemKindLabor, summary.TimeItems)
	return items
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		ProjectID:      inv.ProjectID,
		CustomerID:     inv.CustomerID,
		Number:         inv.Number,
		Date:           inv.Date.Format("2006-01-02"),
		DueDate:        inv.DueDate.Format("2006-01-02"),
		Status:         inv.Status,
		VATRate:        inv.VATRate,
		NetTotal:       inv.NetTotal,
		VATTotal:       inv.VATTotal,
		GrossTotal:     inv.GrossTotal,
		TermsMarkdown:  inv.TermsMarkdown,
		FooterMarkdown: inv.FooterMarkdown,
		Items:          make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	if inv.IssuedAt != nil {
		resp.IssuedAt = inv.IssuedAt.Format(time.RFC3339)
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			Position:    item.Position,
			Kind:        item.Kind,
			Description: item.Description,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return resp
}
