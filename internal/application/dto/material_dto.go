package dto

import "github.com/shopspring/decimal"

// CreateMaterialEntryRequest body for POST /api/projects/:id/materials.
type CreateMaterialEntryRequest struct {
	Name             string          `json:"name" validate:"required"`
	Unit             string          `json:"unit,omitempty"`
	Quantity         decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	SurchargePercent decimal.Decimal `json:"surcharge_percent"`
	AdditionalCost   decimal.Decimal `json:"additional_cost"`
	Date             string          `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateMaterialEntryRequest body for PUT /api/materials/:id.
type UpdateMaterialEntryRequest = CreateMaterialEntryRequest

// MaterialEntryResponse material entry in responses. Total is the billed
// value: quantity x unit price x (1 + surcharge/100) + additional cost.
type MaterialEntryResponse struct {
	ID               string          `json:"id"`
	ProjectID        string          `json:"project_id"`
	Name             string          `json:"name"`
	Unit             string          `json:"unit,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	SurchargePercent decimal.Decimal `json:"surcharge_percent"`
	AdditionalCost   decimal.Decimal `json:"additional_cost"`
	Date             string          `json:"date"`
	Total            decimal.Decimal `json:"total"`
}
