package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialEntry is material consumed on a project, billed with a surcharge
// on the purchase price plus an optional flat additional cost (freight,
// disposal, third-party fees).
type MaterialEntry struct {
	ID               string
	CompanyID        string
	ProjectID        string
	Name             string
	Unit             string
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal // purchase price per unit
	SurchargePercent decimal.Decimal // material surcharge on quantity x unit price
	AdditionalCost   decimal.Decimal // flat extra per entry
	Date             time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
