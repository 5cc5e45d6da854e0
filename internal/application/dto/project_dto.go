package dto

import "github.com/shopspring/decimal"

// CreateProjectRequest body for POST /api/projects. VATRate is a percent;
// when omitted the company default applies.
type CreateProjectRequest struct {
	CustomerID  string           `json:"customer_id" validate:"required,uuid4"`
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description,omitempty"`
	Street      string           `json:"street,omitempty"`
	ZipCode     string           `json:"zip_code,omitempty"`
	City        string           `json:"city,omitempty"`
	VATRate     *decimal.Decimal `json:"vat_rate,omitempty"`
}

// UpdateProjectRequest body for PUT /api/projects/:id.
type UpdateProjectRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description,omitempty"`
	Street      string           `json:"street,omitempty"`
	ZipCode     string           `json:"zip_code,omitempty"`
	City        string           `json:"city,omitempty"`
	Status      string           `json:"status,omitempty" validate:"omitempty,oneof=OPEN BILLED ARCHIVED"`
	VATRate     *decimal.Decimal `json:"vat_rate,omitempty"`
}

// ProjectResponse project in responses.
type ProjectResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Street      string          `json:"street,omitempty"`
	ZipCode     string          `json:"zip_code,omitempty"`
	City        string          `json:"city,omitempty"`
	Status      string          `json:"status"`
	VATRate     decimal.Decimal `json:"vat_rate"`
}
