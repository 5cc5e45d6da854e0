package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest body for POST /api/employees.
type CreateEmployeeRequest struct {
	FirstName  string          `json:"first_name" validate:"required"`
	LastName   string          `json:"last_name" validate:"required"`
	Email      string          `json:"email,omitempty" validate:"omitempty,email"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

// UpdateEmployeeRequest body for PUT /api/employees/:id.
type UpdateEmployeeRequest struct {
	FirstName  string          `json:"first_name" validate:"required"`
	LastName   string          `json:"last_name" validate:"required"`
	Email      string          `json:"email,omitempty" validate:"omitempty,email"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
}

// EmployeeResponse employee in responses.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email,omitempty"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
}
