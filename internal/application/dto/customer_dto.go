package dto

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Street  string `json:"street,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	City    string `json:"city,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Street  string `json:"street,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	City    string `json:"city,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
