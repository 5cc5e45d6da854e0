package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project lifecycle states.
const (
	ProjectStatusOpen     = "OPEN"
	ProjectStatusBilled   = "BILLED"
	ProjectStatusArchived = "ARCHIVED"
)

// Project is a construction/installation site for a customer. Time entries,
// material entries and catalog lines hang off the project and are aggregated
// into a billing summary on demand.
type Project struct {
	ID          string
	CompanyID   string
	CustomerID  string
	Name        string
	Description string
	Street      string
	ZipCode     string
	City        string
	Status      string
	VATRate     decimal.Decimal // percent, e.g. 8.1
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
