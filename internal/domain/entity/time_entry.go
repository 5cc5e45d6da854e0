package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry is one block of worked hours on a project.
//
// HourlyRate is nullable on purpose: an entry without a rate is valid
// (e.g. salaried work) and contributes zero to the billable time total.
type TimeEntry struct {
	ID          string
	CompanyID   string
	ProjectID   string
	EmployeeID  string
	Date        time.Time
	Description string
	Hours       decimal.Decimal
	HourlyRate  *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BillableAmount returns hours x rate, or zero when no rate is set.
func (t *TimeEntry) BillableAmount() decimal.Decimal {
	if t.HourlyRate == nil {
		return decimal.Zero
	}
	return t.Hours.Mul(*t.HourlyRate)
}
