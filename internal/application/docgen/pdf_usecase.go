package docgen

import (
	"context"
	"fmt"

	"github.com/wattwerk/wattwerk-api/internal/application/billing"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// PDFUseCase runs the invoice document pipeline end to end: load, build
// template, assemble HTML, render PDF.
type PDFUseCase struct {
	invoiceUC    *billing.InvoiceUseCase
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	projectRepo  repository.ProjectRepository
	builder      *TemplateBuilder
	assembler    HTMLAssembler
	renderer     PDFRenderer
	baseURI      string
}

// NewPDFUseCase wires the pipeline. baseURI is where the renderer resolves
// relative asset references (uploaded logos).
func NewPDFUseCase(
	invoiceUC *billing.InvoiceUseCase,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	projectRepo repository.ProjectRepository,
	builder *TemplateBuilder,
	assembler HTMLAssembler,
	renderer PDFRenderer,
	baseURI string,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceUC:    invoiceUC,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
		builder:      builder,
		assembler:    assembler,
		renderer:     renderer,
		baseURI:      baseURI,
	}
}

// InvoicePDF renders the invoice document and returns the bytes plus a
// download filename. Drafts render from the live aggregation, issued and
// later states from the frozen item snapshot; the invoice use case makes
// that distinction, this pipeline is the same for both.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	inv, items, err := uc.invoiceUC.Invoice(ctx, companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}
	project, err := uc.projectRepo.GetByID(inv.ProjectID)
	if err != nil {
		return nil, "", err
	}
	if project == nil {
		return nil, "", domain.ErrNotFound
	}

	tpl, err := uc.builder.InvoiceTemplate(inv, items, company, customer, project)
	if err != nil {
		return nil, "", err
	}
	html, err := uc.assembler.BuildHTML(tpl)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.renderer.Render(ctx, html, uc.baseURI)
	if err != nil {
		return nil, "", err
	}
	return pdf, invoiceFilename(inv.Number, inv.ID), nil
}

func invoiceFilename(number, id string) string {
	if number == "" {
		// drafts have no number yet
		return fmt.Sprintf("invoice_draft_%s.pdf", id)
	}
	return fmt.Sprintf("invoice_%s.pdf", number)
}
