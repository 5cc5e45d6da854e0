package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a worker whose hours are tracked against projects.
// HourlyRate is the default billing rate applied to new time entries;
// it may be zero for salaried staff whose hours are not billed.
type Employee struct {
	ID         string
	CompanyID  string
	FirstName  string
	LastName   string
	Email      string
	HourlyRate decimal.Decimal
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName returns "First Last" for document rendering.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
