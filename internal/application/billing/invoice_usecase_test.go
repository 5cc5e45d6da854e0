package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/wattwerk/wattwerk-api/internal/application/billing"
	"github.com/wattwerk/wattwerk-api/internal/application/dto"
	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
)

type invoiceFixture struct {
	*summaryFixture
	invoices *fakeInvoiceRepo
	uc       *appbilling.InvoiceUseCase
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{summaryFixture: newSummaryFixture(), invoices: newFakeInvoiceRepo()}
	f.uc = appbilling.NewInvoiceUseCase(
		f.invoices,
		f.projects,
		f.summaryFixture.uc,
		&fakeTxRunner{repo: f.invoices},
		30,
	)
	return f
}

func (f *invoiceFixture) addMaterial(name, qty, price string) {
	f.materials.entries = append(f.materials.entries, &entity.MaterialEntry{
		ID: name, ProjectID: testProjectID, Name: name,
		Quantity: d(qty), UnitPrice: d(price),
	})
}

func (f *invoiceFixture) addHours(desc, hours, hourlyRate string) {
	f.times.entries = append(f.times.entries, &entity.TimeEntry{
		ID: desc, ProjectID: testProjectID, EmployeeID: "e1",
		Description: desc, Hours: d(hours), HourlyRate: rate(hourlyRate),
	})
}

func TestCreateDraft_AggregatesProject(t *testing.T) {
	f := newInvoiceFixture()
	f.addMaterial("Kabel", "2", "50")
	f.addHours("Montage", "3", "100")

	resp, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusDraft, resp.Status)
	assert.Empty(t, resp.Number, "drafts carry no invoice number")
	assert.True(t, d("400").Equal(resp.NetTotal), "got %s", resp.NetTotal)
	// project VAT rate 8.1% applies by default
	assert.True(t, d("8.1").Equal(resp.VATRate))
	assert.True(t, d("32.4").Equal(resp.VATTotal), "got %s", resp.VATTotal)
	assert.True(t, d("432.4").Equal(resp.GrossTotal), "got %s", resp.GrossTotal)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, entity.InvoiceItemKindMaterial, resp.Items[0].Kind)
	assert.Equal(t, entity.InvoiceItemKindLabor, resp.Items[1].Kind)
}

func TestCreateDraft_VATOverride(t *testing.T) {
	f := newInvoiceFixture()
	f.addHours("Montage", "10", "100")

	override := d("2.6")
	resp, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{VATRate: &override})
	require.NoError(t, err)
	assert.True(t, d("2.6").Equal(resp.VATRate))
	assert.True(t, d("26").Equal(resp.VATTotal))
}

func TestCreateDraft_UnknownProject(t *testing.T) {
	f := newInvoiceFixture()
	_, err := f.uc.CreateDraft(context.Background(), testCompanyID, "no-such-project", dto.CreateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraft_TracksLiveProjectData(t *testing.T) {
	f := newInvoiceFixture()
	f.addMaterial("Kabel", "2", "50")

	resp, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	// more material booked after the draft was created
	f.addMaterial("Dosen", "4", "10")

	got, err := f.uc.Get(context.Background(), testCompanyID, resp.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2, "draft items re-aggregate on every read")
}

func TestDraft_HeaderTotalsFollowLiveItems(t *testing.T) {
	f := newInvoiceFixture()
	f.addMaterial("Kabel", "2", "50")

	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)
	require.True(t, d("100").Equal(draft.NetTotal))

	// material booked after draft creation must move the totals, not just
	// the item table
	f.addMaterial("Dosen", "4", "10")

	got, err := f.uc.Get(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	itemSum := got.Items[0].Total.Add(got.Items[1].Total)
	assert.True(t, itemSum.Equal(got.NetTotal), "items sum %s, header net %s", itemSum, got.NetTotal)
	assert.True(t, d("140").Equal(got.NetTotal), "got %s", got.NetTotal)
	assert.True(t, got.GrossTotal.Equal(got.NetTotal.Add(got.VATTotal)))
}

func TestCancel_FromDraftKeepsItems(t *testing.T) {
	f := newInvoiceFixture()
	f.addMaterial("Kabel", "2", "50")

	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)

	cancelled, err := f.uc.Cancel(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusCancelled, cancelled.Status)
	require.Len(t, cancelled.Items, 1, "cancelling a draft must not drop its items")
	assert.True(t, d("100").Equal(cancelled.NetTotal))

	// the snapshot persists: later reads see the frozen items even after
	// the project changes
	f.addMaterial("Nachtrag", "1", "999")
	got, err := f.uc.Get(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, d("100").Equal(got.NetTotal))
}

func TestIssue_FreezesSnapshot(t *testing.T) {
	f := newInvoiceFixture()
	f.addMaterial("Kabel", "2", "50")
	f.addHours("Montage", "3", "100")

	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)

	issued, err := f.uc.Issue(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusIssued, issued.Status)
	assert.NotEmpty(t, issued.Number)
	assert.Contains(t, issued.Number, "RE-")
	assert.NotEmpty(t, issued.IssuedAt)
	require.Len(t, issued.Items, 2)

	// project changes after issuance must not alter the invoice
	f.addMaterial("Nachtrag", "1", "999")

	got, err := f.uc.Get(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2, "issued items come from the frozen snapshot")
	assert.True(t, d("400").Equal(got.NetTotal))
}

func TestIssue_RecomputesTotalsAtIssuance(t *testing.T) {
	f := newInvoiceFixture()
	f.addHours("Montage", "1", "100")

	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)
	assert.True(t, d("100").Equal(draft.NetTotal))

	// the project grows between draft and issue
	f.addHours("Zusatz", "2", "100")

	issued, err := f.uc.Issue(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	assert.True(t, d("300").Equal(issued.NetTotal), "got %s", issued.NetTotal)
	assert.Len(t, issued.Items, 2)
}

func TestIssue_TwiceRejected(t *testing.T) {
	f := newInvoiceFixture()
	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)

	_, err = f.uc.Issue(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)

	_, err = f.uc.Issue(context.Background(), testCompanyID, draft.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMarkPaid_RequiresIssued(t *testing.T) {
	f := newInvoiceFixture()
	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)

	_, err = f.uc.MarkPaid(context.Background(), testCompanyID, draft.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "a draft cannot be paid")

	_, err = f.uc.Issue(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)

	paid, err := f.uc.MarkPaid(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
}

func TestCancel_FromDraftAndIssued(t *testing.T) {
	f := newInvoiceFixture()

	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)
	cancelled, err := f.uc.Cancel(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusCancelled, cancelled.Status)

	// terminal states reject every further transition
	_, err = f.uc.Issue(context.Background(), testCompanyID, draft.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = f.uc.MarkPaid(context.Background(), testCompanyID, draft.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGet_ForeignCompanyHidden(t *testing.T) {
	f := newInvoiceFixture()
	draft, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)

	_, err = f.uc.Get(context.Background(), "99999999-9999-9999-9999-999999999999", draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemPositions_SequentialAcrossKinds(t *testing.T) {
	f := newInvoiceFixture()
	f.addMaterial("Kabel", "1", "10")
	f.catalog.lines = append(f.catalog.lines, &entity.CatalogLine{
		ID: "c1", ProjectID: testProjectID, Name: "Steckdose", Quantity: d("1"), UnitPrice: d("45"),
	})
	f.addHours("Montage", "1", "100")

	resp, err := f.uc.CreateDraft(context.Background(), testCompanyID, testProjectID, dto.CreateInvoiceRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	for i, item := range resp.Items {
		assert.Equal(t, i+1, item.Position)
	}
	assert.Equal(t, entity.InvoiceItemKindMaterial, resp.Items[0].Kind)
	assert.Equal(t, entity.InvoiceItemKindCatalog, resp.Items[1].Kind)
	assert.Equal(t, entity.InvoiceItemKindLabor, resp.Items[2].Kind)
}
