package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/application/report"
)

// ReportHandler control report endpoints.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Create POST /api/projects/:id/reports
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateControlReportRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.uc.Create(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/reports/:id
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateControlReportRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.uc.Update(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/reports/:id
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListByProject GET /api/projects/:id/reports
func (h *ReportHandler) ListByProject(c *fiber.Ctx) error {
	resp, err := h.uc.ListByProject(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PDF GET /api/reports/:id/pdf
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.PDF(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
