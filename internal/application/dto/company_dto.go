package dto

import "time"

// UpdateCompanyRequest body for PUT /api/company. The company row is created
// at bootstrap; the API only lets office staff edit master data and branding.
type UpdateCompanyRequest struct {
	Name      string `json:"name" validate:"required"`
	Street    string `json:"street,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	VATNumber string `json:"vat_number,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// CompanyResponse contractor master data in responses.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Street    string    `json:"street,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	City      string    `json:"city,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	VATNumber string    `json:"vat_number,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
