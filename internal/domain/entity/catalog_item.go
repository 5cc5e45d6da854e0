package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem is a priced work position from the company catalog
// (e.g. "Install socket outlet, flush-mounted"). Projects reference
// catalog items through CatalogLine with a project-specific quantity.
type CatalogItem struct {
	ID          string
	CompanyID   string
	Code        string // catalog position number, e.g. "NPK 511.201"
	Name        string
	Description string
	Unit        string // piece, meter, hour, lump sum
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CatalogLine links a catalog item to a project with a quantity.
// UnitPrice is copied from the item at creation so later catalog price
// changes do not retroactively alter open projects.
type CatalogLine struct {
	ID            string
	ProjectID     string
	CatalogItemID string
	Name          string
	Unit          string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	CreatedAt     time.Time
}
