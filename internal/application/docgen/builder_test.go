package docgen_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwerk/wattwerk-api/internal/application/docgen"
	"github.com/wattwerk/wattwerk-api/internal/domain/document"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/pkg/money"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testBuilder() *docgen.TemplateBuilder {
	return docgen.NewTemplateBuilder(money.NewFormatter("de-CH", "CHF"))
}

func testCompany() *entity.Company {
	return &entity.Company{
		ID: "co1", Name: "Wattwerk AG",
		Street: "Industriestrasse 5", ZipCode: "8400", City: "Winterthur",
		Email: "info@wattwerk.example", VATNumber: "CHE-123.456.789 MWST",
	}
}

func testCustomer() *entity.Customer {
	return &entity.Customer{
		ID: "cu1", Name: "Familie Muster",
		Street: "Dorfstrasse 12", ZipCode: "8500", City: "Frauenfeld",
	}
}

func testProject() *entity.Project {
	return &entity.Project{ID: "p1", Name: "EFH Muster, Elektroinstallation"}
}

func testInvoice(status string) *entity.Invoice {
	return &entity.Invoice{
		ID:         "inv1",
		Status:     status,
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC),
		VATRate:    d("8.1"),
		NetTotal:   d("1000"),
		VATTotal:   d("81"),
		GrossTotal: d("1081"),
	}
}

func testItems() []*entity.InvoiceItem {
	return []*entity.InvoiceItem{
		{Position: 1, Kind: entity.InvoiceItemKindMaterial, Description: "Kabel TT 3x1.5", Unit: "m", Quantity: d("50"), UnitPrice: d("2"), Total: d("100")},
		{Position: 2, Kind: entity.InvoiceItemKindLabor, Description: "Montage", Unit: "h", Quantity: d("9"), UnitPrice: d("100"), Total: d("900")},
	}
}

func sectionKinds(tpl *document.Template) []document.SectionKind {
	kinds := make([]document.SectionKind, 0, len(tpl.Sections))
	for _, s := range tpl.OrderedSections() {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestInvoiceTemplate_SectionLayout(t *testing.T) {
	inv := testInvoice(entity.InvoiceStatusIssued)
	inv.Number = "RE-2026-42"
	inv.TermsMarkdown = "Zahlbar innert **30 Tagen**."
	inv.FooterMarkdown = "Vielen Dank."

	tpl, err := testBuilder().InvoiceTemplate(inv, testItems(), testCompany(), testCustomer(), testProject())
	require.NoError(t, err)
	require.NoError(t, tpl.Validate())

	assert.Equal(t, document.TypeInvoice, tpl.Type)
	assert.Equal(t, "Rechnung RE-2026-42", tpl.Meta.Title)
	assert.Equal(t, []document.SectionKind{
		document.KindHeader,   // sender block
		document.KindMarkdown, // recipient + metadata
		document.KindTable,    // items
		document.KindTable,    // totals
		document.KindMarkdown, // terms
		document.KindFooter,
	}, sectionKinds(tpl))
}

func TestInvoiceTemplate_LogoSectionWhenSet(t *testing.T) {
	company := testCompany()
	company.LogoURL = "/uploads/logo.png"

	tpl, err := testBuilder().InvoiceTemplate(testInvoice(entity.InvoiceStatusIssued), testItems(), company, testCustomer(), testProject())
	require.NoError(t, err)

	kinds := sectionKinds(tpl)
	require.NotEmpty(t, kinds)
	assert.Equal(t, document.KindImage, kinds[0])
	img := tpl.OrderedSections()[0].Content.(document.ImageContent)
	assert.Equal(t, "/uploads/logo.png", img.URL)
	assert.Equal(t, 180, img.Width)
}

func TestInvoiceTemplate_DraftTitle(t *testing.T) {
	tpl, err := testBuilder().InvoiceTemplate(testInvoice(entity.InvoiceStatusDraft), testItems(), testCompany(), testCustomer(), testProject())
	require.NoError(t, err)
	assert.Equal(t, document.TypeDraft, tpl.Type)
	assert.Equal(t, "Rechnungsentwurf", tpl.Meta.Title)
}

func TestInvoiceTemplate_ItemTable(t *testing.T) {
	tpl, err := testBuilder().InvoiceTemplate(testInvoice(entity.InvoiceStatusIssued), testItems(), testCompany(), testCustomer(), testProject())
	require.NoError(t, err)

	var table document.TableContent
	found := false
	for _, s := range tpl.OrderedSections() {
		if s.Kind == document.KindTable {
			table = s.Content.(document.TableContent)
			found = true
			break
		}
	}
	require.True(t, found)

	assert.Equal(t, []string{"Pos.", "Beschreibung", "Menge", "Einheit", "Ansatz", "Betrag"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1", table.Rows[0]["Pos."])
	assert.Equal(t, "Kabel TT 3x1.5", table.Rows[0]["Beschreibung"])
	assert.Equal(t, "m", table.Rows[0]["Einheit"])
	assert.Equal(t, "Montage", table.Rows[1]["Beschreibung"])
}

func TestInvoiceTemplate_TotalsTable(t *testing.T) {
	tpl, err := testBuilder().InvoiceTemplate(testInvoice(entity.InvoiceStatusIssued), testItems(), testCompany(), testCustomer(), testProject())
	require.NoError(t, err)

	sections := tpl.OrderedSections()
	var tables []document.TableContent
	for _, s := range sections {
		if s.Kind == document.KindTable {
			tables = append(tables, s.Content.(document.TableContent))
		}
	}
	require.Len(t, tables, 2)

	totals := tables[1]
	assert.Equal(t, []string{"", "Betrag"}, totals.Headers)
	require.Len(t, totals.Rows, 3)
	assert.Equal(t, "Zwischentotal", totals.Rows[0][""])
	assert.Equal(t, "MwSt 8.1%", totals.Rows[1][""])
	assert.Equal(t, "**Total**", totals.Rows[2][""])
	assert.Contains(t, totals.Rows[2]["Betrag"], "CHF")
}

func TestInvoiceTemplate_MetadataBlock(t *testing.T) {
	tpl, err := testBuilder().InvoiceTemplate(testInvoice(entity.InvoiceStatusIssued), testItems(), testCompany(), testCustomer(), testProject())
	require.NoError(t, err)

	var meta string
	for _, s := range tpl.OrderedSections() {
		if s.Kind == document.KindMarkdown {
			meta = s.Content.(document.TextContent).Markdown
			break
		}
	}
	assert.Contains(t, meta, "Familie Muster")
	assert.Contains(t, meta, "Projekt: EFH Muster, Elektroinstallation")
	assert.Contains(t, meta, "Datum: 15.03.2026")
	assert.Contains(t, meta, "Zahlbar bis: 14.04.2026")
}

func TestInvoiceTemplate_Deterministic(t *testing.T) {
	b := testBuilder()
	first, err := b.InvoiceTemplate(testInvoice(entity.InvoiceStatusIssued), testItems(), testCompany(), testCustomer(), testProject())
	require.NoError(t, err)
	second, err := b.InvoiceTemplate(testInvoice(entity.InvoiceStatusIssued), testItems(), testCompany(), testCustomer(), testProject())
	require.NoError(t, err)
	assert.Equal(t, first.Sections, second.Sections)
}
