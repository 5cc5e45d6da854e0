package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/wattwerk/wattwerk-api/internal/application/billing"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
)

const (
	testCompanyID = "11111111-1111-1111-1111-111111111111"
	testProjectID = "22222222-2222-2222-2222-222222222222"
)

type summaryFixture struct {
	projects  *fakeProjectRepo
	materials *fakeMaterialRepo
	catalog   *fakeCatalogLineRepo
	times     *fakeTimeRepo
	employees *fakeEmployeeRepo
	uc        *appbilling.SummaryUseCase
}

func newSummaryFixture() *summaryFixture {
	f := &summaryFixture{
		projects: newFakeProjectRepo(&entity.Project{
			ID:        testProjectID,
			CompanyID: testCompanyID,
			Name:      "EFH Muster, Elektroinstallation",
			Status:    entity.ProjectStatusOpen,
			VATRate:   d("8.1"),
		}),
		materials: &fakeMaterialRepo{},
		catalog:   &fakeCatalogLineRepo{},
		times:     &fakeTimeRepo{},
		employees: newFakeEmployeeRepo(),
	}
	f.uc = appbilling.NewSummaryUseCase(f.projects, f.materials, f.catalog, f.times, f.employees)
	return f
}

func rate(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestSummarize_MaterialAndTimeTotals(t *testing.T) {
	f := newSummaryFixture()
	f.materials.entries = append(f.materials.entries, &entity.MaterialEntry{
		ID: "m1", ProjectID: testProjectID, Name: "Kabel TT 3x1.5",
		Unit: "m", Quantity: d("2"), UnitPrice: d("50"),
	})
	f.times.entries = append(f.times.entries, &entity.TimeEntry{
		ID: "t1", ProjectID: testProjectID, EmployeeID: "e1",
		Description: "Installation EG", Hours: d("3"), HourlyRate: rate("100"),
	})

	s, err := f.uc.Summarize(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)

	assert.True(t, d("100").Equal(s.MaterialTotal), "got %s", s.MaterialTotal)
	assert.True(t, d("300").Equal(s.TimeTotal), "got %s", s.TimeTotal)
	assert.True(t, d("400").Equal(s.Total), "got %s", s.Total)
	require.Len(t, s.MaterialItems, 1)
	require.Len(t, s.TimeItems, 1)
	assert.Equal(t, "Kabel TT 3x1.5", s.MaterialItems[0].Description)
	assert.Equal(t, "h", s.TimeItems[0].Unit)
}

func TestSummarize_SurchargeAndAdditionalInBreakdown(t *testing.T) {
	f := newSummaryFixture()
	// 10 x 12.50 = 125, +10% = 137.5, +7.5 = 145
	f.materials.entries = append(f.materials.entries, &entity.MaterialEntry{
		ID: "m1", ProjectID: testProjectID, Name: "FI-Schalter",
		Quantity: d("10"), UnitPrice: d("12.50"),
		SurchargePercent: d("10"), AdditionalCost: d("7.5"),
	})

	s, err := f.uc.Summarize(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)

	assert.True(t, d("145").Equal(s.MaterialTotal), "got %s", s.MaterialTotal)
	assert.True(t, d("125").Equal(s.Breakdown.MaterialCost))
	assert.True(t, d("12.5").Equal(s.Breakdown.SurchargeTotal), "got %s", s.Breakdown.SurchargeTotal)
	assert.True(t, d("7.5").Equal(s.Breakdown.AdditionalCostTotal))
	assert.True(t, d("20").Equal(s.Breakdown.SurchargeAdditionalSum))
}

func TestSummarize_CatalogLinesCountTowardMaterialTotal(t *testing.T) {
	f := newSummaryFixture()
	f.catalog.lines = append(f.catalog.lines, &entity.CatalogLine{
		ID: "c1", ProjectID: testProjectID, CatalogItemID: "i1",
		Name: "Steckdose T13 montieren", Unit: "Stk",
		Quantity: d("5"), UnitPrice: d("45"),
	})

	s, err := f.uc.Summarize(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)

	require.Len(t, s.CatalogItems, 1)
	assert.Empty(t, s.MaterialItems)
	assert.True(t, d("225").Equal(s.CatalogItems[0].Total))
	assert.True(t, d("225").Equal(s.MaterialTotal))
	assert.True(t, d("225").Equal(s.Breakdown.CatalogCost))
	assert.True(t, decimal.Zero.Equal(s.Breakdown.MaterialCost))
}

func TestSummarize_NilHourlyRateContributesZero(t *testing.T) {
	f := newSummaryFixture()
	f.times.entries = append(f.times.entries, &entity.TimeEntry{
		ID: "t1", ProjectID: testProjectID, EmployeeID: "e1",
		Description: "Lehrlingsarbeit", Hours: d("8"), HourlyRate: nil,
	})

	s, err := f.uc.Summarize(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)

	require.Len(t, s.TimeItems, 1)
	assert.True(t, decimal.Zero.Equal(s.TimeItems[0].Total))
	assert.True(t, decimal.Zero.Equal(s.TimeTotal))
	assert.True(t, d("8").Equal(s.TimeItems[0].Quantity))
}

func TestSummarize_EmptyDescriptionFallsBackToEmployeeName(t *testing.T) {
	f := newSummaryFixture()
	f.employees.employees["e1"] = &entity.Employee{
		ID: "e1", CompanyID: testCompanyID, FirstName: "Hans", LastName: "Keller",
	}
	f.times.entries = append(f.times.entries, &entity.TimeEntry{
		ID: "t1", ProjectID: testProjectID, EmployeeID: "e1",
		Hours: d("2"), HourlyRate: rate("95"),
	})

	s, err := f.uc.Summarize(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)
	require.Len(t, s.TimeItems, 1)
	assert.Equal(t, "Hans Keller", s.TimeItems[0].Description)
}

func TestSummarize_UnknownProject(t *testing.T) {
	f := newSummaryFixture()
	_, err := f.uc.Summarize(context.Background(), testCompanyID, "33333333-3333-3333-3333-333333333333")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummarize_ForeignCompanyProjectHidden(t *testing.T) {
	f := newSummaryFixture()
	_, err := f.uc.Summarize(context.Background(), "99999999-9999-9999-9999-999999999999", testProjectID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummarize_EmptyProjectYieldsZeroTotals(t *testing.T) {
	f := newSummaryFixture()
	s, err := f.uc.Summarize(context.Background(), testCompanyID, testProjectID)
	require.NoError(t, err)

	assert.Empty(t, s.MaterialItems)
	assert.Empty(t, s.TimeItems)
	assert.True(t, decimal.Zero.Equal(s.Total))
}
