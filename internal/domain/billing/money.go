// Package billing holds the pure money arithmetic and the transient
// aggregation value objects. Everything here is side-effect free; amounts
// are shopspring decimals and are never rounded — rounding to currency
// precision happens only at presentation time (pkg/money).
package billing

import "github.com/shopspring/decimal"

// LineTotal returns quantity x unit price. Negative quantities or prices
// are allowed (credit/correction lines) and propagate their sign.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// VATAmount returns net x rate/100 for a VAT rate given in percent.
func VATAmount(net, vatRatePercent decimal.Decimal) decimal.Decimal {
	return net.Mul(vatRatePercent).Div(decimal.NewFromInt(100))
}

// Gross returns net + vat.
func Gross(net, vat decimal.Decimal) decimal.Decimal {
	return net.Add(vat)
}

// MaterialLineTotal values one material entry:
// quantity x unitPrice x (1 + surcharge/100) + additionalCost.
func MaterialLineTotal(quantity, unitPrice, surchargePercent, additionalCost decimal.Decimal) decimal.Decimal {
	base := quantity.Mul(unitPrice)
	surcharge := base.Mul(surchargePercent).Div(decimal.NewFromInt(100))
	return base.Add(surcharge).Add(additionalCost)
}
