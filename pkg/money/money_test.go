package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wattwerk/wattwerk-api/pkg/money"
)

func TestFormat_RoundsToTwoDecimals(t *testing.T) {
	f := money.NewFormatter("de-CH", "CHF")

	assert.Equal(t, "CHF 81.00", f.Format(decimal.NewFromInt(81)))
	assert.Equal(t, "CHF 0.10", f.Format(decimal.RequireFromString("0.1")))
	// 8.1% of 1000 at full precision rounds cleanly at display time.
	assert.Equal(t, "CHF 81.00", f.Format(decimal.RequireFromString("81.000")))
}

func TestFormat_GroupsThousandsForDeCH(t *testing.T) {
	f := money.NewFormatter("de-CH", "CHF")

	got := f.Format(decimal.RequireFromString("1081.00"))
	// de-CH groups thousands with an apostrophe: CHF 1’081.00
	assert.True(t, strings.HasPrefix(got, "CHF 1"), got)
	assert.True(t, strings.HasSuffix(got, "081.00"), got)
}

func TestNewFormatter_FallsBackOnBadLocale(t *testing.T) {
	f := money.NewFormatter("not a locale", "CHF")
	assert.Equal(t, "CHF 50.00", f.Format(decimal.NewFromInt(50)))
}
