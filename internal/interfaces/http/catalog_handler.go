package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/application/usecase"
)

// CatalogHandler catalog and project catalog line endpoints.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateItem POST /api/catalog
func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateCatalogItemRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.uc.CreateItem(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateItem PUT /api/catalog/:id
func (h *CatalogHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCatalogItemRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.uc.UpdateItem(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListItems GET /api/catalog
func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	resp, err := h.uc.ListItems(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// AddLine POST /api/projects/:id/catalog-lines
func (h *CatalogHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddCatalogLineRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	resp, err := h.uc.AddLine(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RemoveLine DELETE /api/projects/:id/catalog-lines/:lineID
func (h *CatalogHandler) RemoveLine(c *fiber.Ctx) error {
	if err := h.uc.RemoveLine(GetCompanyID(c), c.Params("id"), c.Params("lineID")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLines GET /api/projects/:id/catalog-lines
func (h *CatalogHandler) ListLines(c *fiber.Ctx) error {
	resp, err := h.uc.ListLines(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
