package billing

import "github.com/shopspring/decimal"

// CostBreakdown splits a project aggregation into its cost constituents.
//
// The two Sum fields are derived:
//
//	CatalogMaterialSum     = CatalogCost + MaterialCost
//	SurchargeAdditionalSum = SurchargeTotal + AdditionalCostTotal
//
// They are recomputed by NewCostBreakdown on every construction and are
// never stored or mutated independently, so they cannot drift from their
// constituents.
type CostBreakdown struct {
	ServiceCost            decimal.Decimal `json:"service_cost"`
	CatalogCost            decimal.Decimal `json:"catalog_cost"`
	MaterialCost           decimal.Decimal `json:"material_cost"`
	SurchargeTotal         decimal.Decimal `json:"surcharge_total"`
	AdditionalCostTotal    decimal.Decimal `json:"additional_cost_total"`
	CatalogMaterialSum     decimal.Decimal `json:"catalog_material_sum"`
	SurchargeAdditionalSum decimal.Decimal `json:"surcharge_additional_sum"`
}

// NewCostBreakdown builds a breakdown from its constituents and derives
// the sum fields.
func NewCostBreakdown(serviceCost, catalogCost, materialCost, surchargeTotal, additionalCostTotal decimal.Decimal) CostBreakdown {
	return CostBreakdown{
		ServiceCost:            serviceCost,
		CatalogCost:            catalogCost,
		MaterialCost:           materialCost,
		SurchargeTotal:         surchargeTotal,
		AdditionalCostTotal:    additionalCostTotal,
		CatalogMaterialSum:     catalogCost.Add(materialCost),
		SurchargeAdditionalSum: surchargeTotal.Add(additionalCostTotal),
	}
}
