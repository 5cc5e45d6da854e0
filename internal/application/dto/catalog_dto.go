package dto

import "github.com/shopspring/decimal"

// CreateCatalogItemRequest body for POST /api/catalog.
type CreateCatalogItemRequest struct {
	Code        string          `json:"code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateCatalogItemRequest body for PUT /api/catalog/:id.
type UpdateCatalogItemRequest = CreateCatalogItemRequest

// CatalogItemResponse catalog position in responses.
type CatalogItemResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// AddCatalogLineRequest body for POST /api/projects/:id/catalog-lines.
// The unit price is copied from the catalog item at creation time.
type AddCatalogLineRequest struct {
	CatalogItemID string          `json:"catalog_item_id" validate:"required,uuid4"`
	Quantity      decimal.Decimal `json:"quantity" validate:"required"`
}

// CatalogLineResponse project catalog line in responses.
type CatalogLineResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	CatalogItemID string          `json:"catalog_item_id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
}
