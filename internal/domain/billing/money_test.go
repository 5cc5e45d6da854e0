package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wattwerk/wattwerk-api/internal/domain/billing"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineTotal(t *testing.T) {
	assert.True(t, d("100").Equal(billing.LineTotal(d("2"), d("50"))))
	assert.True(t, d("0").Equal(billing.LineTotal(d("0"), d("50"))))
	// credit lines keep their sign
	assert.True(t, d("-50").Equal(billing.LineTotal(d("-1"), d("50"))))
}

func TestLineTotal_FractionalPrecision(t *testing.T) {
	// 3 x 0.1 must be exactly 0.3, not a float approximation
	assert.True(t, d("0.3").Equal(billing.LineTotal(d("3"), d("0.1"))))
}

func TestVATAmount(t *testing.T) {
	// net 1000 at 8.1% -> VAT 81, gross 1081
	vat := billing.VATAmount(d("1000"), d("8.1"))
	assert.True(t, d("81").Equal(vat), "got %s", vat)
	assert.True(t, d("1081").Equal(billing.Gross(d("1000"), vat)))
}

func TestVATAmount_ZeroRate(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(billing.VATAmount(d("1000"), decimal.Zero)))
}

func TestMaterialLineTotal(t *testing.T) {
	// 10 x 12.50 = 125, +10% surcharge = 137.5, +7.5 additional = 145
	total := billing.MaterialLineTotal(d("10"), d("12.50"), d("10"), d("7.5"))
	assert.True(t, d("145").Equal(total), "got %s", total)
}

func TestMaterialLineTotal_NoSurchargeNoAdditional(t *testing.T) {
	total := billing.MaterialLineTotal(d("2"), d("50"), decimal.Zero, decimal.Zero)
	assert.True(t, d("100").Equal(total))
}
