package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/application/usecase"
)

// MaterialHandler material entry endpoints.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler builds the handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create POST /api/projects/:id/materials
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialEntryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.uc.Create(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/materials/:id
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialEntryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/materials/:id
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByProject GET /api/projects/:id/materials
func (h *MaterialHandler) ListByProject(c *fiber.Ctx) error {
	resp, err := h.uc.ListByProject(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
