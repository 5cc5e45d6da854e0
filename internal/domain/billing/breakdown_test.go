package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattwerk/wattwerk-api/internal/domain/billing"
)

func TestNewCostBreakdown_DerivesSums(t *testing.T) {
	b := billing.NewCostBreakdown(d("400"), d("250"), d("125"), d("12.5"), d("7.5"))

	assert.True(t, d("400").Equal(b.ServiceCost))
	assert.True(t, d("250").Equal(b.CatalogCost))
	assert.True(t, d("125").Equal(b.MaterialCost))
	assert.True(t, d("375").Equal(b.CatalogMaterialSum), "got %s", b.CatalogMaterialSum)
	assert.True(t, d("20").Equal(b.SurchargeAdditionalSum), "got %s", b.SurchargeAdditionalSum)
}

func TestNewCostBreakdown_SumsTrackConstituents(t *testing.T) {
	// Rebuilding with changed constituents yields consistent sums; the
	// derived fields cannot drift because they are never stored.
	b1 := billing.NewCostBreakdown(d("1"), d("2"), d("3"), d("4"), d("5"))
	b2 := billing.NewCostBreakdown(d("1"), d("20"), d("3"), d("4"), d("5"))

	assert.True(t, d("5").Equal(b1.CatalogMaterialSum))
	assert.True(t, d("23").Equal(b2.CatalogMaterialSum))
	assert.True(t, b1.SurchargeAdditionalSum.Equal(b2.SurchargeAdditionalSum))
}
