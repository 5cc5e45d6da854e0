package billing

import "github.com/shopspring/decimal"

// LineItem is one billable row of a summary: quantity x unit price with the
// derived total. Immutable once built; the aggregator recomputes it from
// source records on every request.
type LineItem struct {
	Description string          `json:"description"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// NewLineItem derives the total from quantity and unit price.
func NewLineItem(description, unit string, quantity, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		Description: description,
		Unit:        unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       LineTotal(quantity, unitPrice),
	}
}

// Summary is the per-project billing snapshot: constructed, returned,
// discarded. Never persisted — always derived fresh from current material,
// catalog and time records. MaterialTotal covers material entries and
// catalog lines together. Invariant: Total = MaterialTotal + TimeTotal.
type Summary struct {
	ProjectID     string          `json:"project_id"`
	MaterialItems []LineItem      `json:"material_items"`
	CatalogItems  []LineItem      `json:"catalog_items"`
	TimeItems     []LineItem      `json:"time_items"`
	MaterialTotal decimal.Decimal `json:"material_total"`
	TimeTotal     decimal.Decimal `json:"time_total"`
	Total         decimal.Decimal `json:"total"`
	Breakdown     CostBreakdown   `json:"breakdown"`
}
