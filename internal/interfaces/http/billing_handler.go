package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wattwerk/wattwerk-api/internal/application/billing"
	"github.com/wattwerk/wattwerk-api/internal/application/docgen"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
)

// BillingHandler billing summary, invoice lifecycle and invoice PDF
// endpoints.
type BillingHandler struct {
	summaryUC *billing.SummaryUseCase
	invoiceUC *billing.InvoiceUseCase
	pdfUC     *docgen.PDFUseCase
}

// NewBillingHandler builds the handler.
func NewBillingHandler(summaryUC *billing.SummaryUseCase, invoiceUC *billing.InvoiceUseCase, pdfUC *docgen.PDFUseCase) *BillingHandler {
	return &BillingHandler{summaryUC: summaryUC, invoiceUC: invoiceUC, pdfUC: pdfUC}
}

// Summary GET /api/projects/:id/billing-summary
func (h *BillingHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.summaryUC.Summarize(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// CreateDraft POST /api/projects/:id/invoices
func (h *BillingHandler) CreateDraft(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.invoiceUC.CreateDraft(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByProject GET /api/projects/:id/invoices
func (h *BillingHandler) ListByProject(c *fiber.Ctx) error {
	resp, err := h.invoiceUC.ListByProject(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/invoices/:id
func (h *BillingHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.invoiceUC.Get(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Issue POST /api/invoices/:id/issue
func (h *BillingHandler) Issue(c *fiber.Ctx) error {
	resp, err := h.invoiceUC.Issue(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MarkPaid POST /api/invoices/:id/pay
func (h *BillingHandler) MarkPaid(c *fiber.Ctx) error {
	resp, err := h.invoiceUC.MarkPaid(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Cancel POST /api/invoices/:id/cancel
func (h *BillingHandler) Cancel(c *fiber.Ctx) error {
	resp, err := h.invoiceUC.Cancel(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PDF GET /api/invoices/:id/pdf
func (h *BillingHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdfUC.InvoicePDF(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
