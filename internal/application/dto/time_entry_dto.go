package dto

import "github.com/shopspring/decimal"

// CreateTimeEntryRequest body for POST /api/projects/:id/time-entries.
// HourlyRate: nil means "use the employee's default rate"; an explicit
// zero means the hours are tracked but not billed.
type CreateTimeEntryRequest struct {
	EmployeeID  string           `json:"employee_id" validate:"required,uuid4"`
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Description string           `json:"description,omitempty"`
	Hours       decimal.Decimal  `json:"hours" validate:"required"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
}

// UpdateTimeEntryRequest body for PUT /api/time-entries/:id.
type UpdateTimeEntryRequest struct {
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`
	Description string           `json:"description,omitempty"`
	Hours       decimal.Decimal  `json:"hours" validate:"required"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
}

// TimeEntryResponse time entry in responses. BillableAmount is derived;
// zero when no rate is set.
type TimeEntryResponse struct {
	ID             string           `json:"id"`
	ProjectID      string           `json:"project_id"`
	EmployeeID     string           `json:"employee_id"`
	Date           string           `json:"date"`
	Description    string           `json:"description,omitempty"`
	Hours          decimal.Decimal  `json:"hours"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate,omitempty"`
	BillableAmount decimal.Decimal  `json:"billable_amount"`
}
