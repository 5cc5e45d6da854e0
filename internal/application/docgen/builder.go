package docgen

import (
	"fmt"

	"github.com/wattwerk/wattwerk-api/internal/domain/document"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
	"github.com/wattwerk/wattwerk-api/pkg/money"
)

// Column headers of the invoice item table. The assembler renders body cells
// strictly in this header order.
var invoiceItemHeaders = []string{"Pos.", "Beschreibung", "Menge", "Einheit", "Ansatz", "Betrag"}

// TemplateBuilder maps domain records onto document templates. The output is
// deterministic: the same inputs always produce the same section list in the
// same positions.
type TemplateBuilder struct {
	fmt *money.Formatter
}

// NewTemplateBuilder wires the amount formatter.
func NewTemplateBuilder(fmt *money.Formatter) *TemplateBuilder {
	return &TemplateBuilder{fmt: fmt}
}

// InvoiceTemplate assembles the full invoice document:
// logo, sender block, recipient and invoice metadata, the item table,
// the totals table, then the optional terms and footer blocks.
func (tb *TemplateBuilder) InvoiceTemplate(
	inv *entity.Invoice,
	items []*entity.InvoiceItem,
	company *entity.Company,
	customer *entity.Customer,
	project *entity.Project,
) (*document.Template, error) {
	docType := document.TypeInvoice
	title := "Rechnung"
	if inv.Mutable() {
		docType = document.TypeDraft
		title = "Rechnungsentwurf"
	}
	if inv.Number != "" {
		title += " " + inv.Number
	}

	var b document.Builder
	if company.LogoURL != "" {
		b.Append(document.KindImage, document.ImageContent{URL: company.LogoURL, Alt: company.Name, Width: 180})
	}
	b.Append(document.KindHeader, document.TextContent{Markdown: senderBlock(company)})
	b.Append(document.KindMarkdown, document.TextContent{Markdown: tb.metaBlock(title, inv, customer, project)})

	itemTable, err := tb.itemTable(items)
	if err != nil {
		return nil, err
	}
	b.Append(document.KindTable, itemTable)

	totalsTable, err := tb.totalsTable(inv)
	if err != nil {
		return nil, err
	}
	b.Append(document.KindTable, totalsTable)

	if inv.TermsMarkdown != "" {
		b.Append(document.KindMarkdown, document.TextContent{Markdown: inv.TermsMarkdown})
	}
	if inv.FooterMarkdown != "" {
		b.Append(document.KindFooter, document.TextContent{Markdown: inv.FooterMarkdown})
	}

	return &document.Template{
		ID:       inv.ID,
		Type:     docType,
		Sections: b.Sections(),
		Meta: document.Meta{
			Title:   title,
			Author:  company.Name,
			Company: company.Name,
		},
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}, nil
}

func senderBlock(c *entity.Company) string {
	block := "**" + c.Name + "**  \n"
	if c.Street != "" {
		block += c.Street + "  \n"
	}
	if c.ZipCode != "" || c.City != "" {
		block += c.ZipCode + " " + c.City + "  \n"
	}
	if c.Phone != "" {
		block += c.Phone + "  \n"
	}
	if c.Email != "" {
		block += c.Email + "  \n"
	}
	if c.VATNumber != "" {
		block += c.VATNumber + "\n"
	}
	return block
}

func (tb *TemplateBuilder) metaBlock(title string, inv *entity.Invoice, customer *entity.Customer, project *entity.Project) string {
	block := customer.Name + "  \n"
	if customer.Street != "" {
		block += customer.Street + "  \n"
	}
	if customer.ZipCode != "" || customer.City != "" {
		block += customer.ZipCode + " " + customer.City + "\n"
	}
	block += "\n## " + title + "\n\n"
	block += "Projekt: " + project.Name + "  \n"
	block += "Datum: " + inv.Date.Format("02.01.2006") + "  \n"
	block += "Zahlbar bis: " + inv.DueDate.Format("02.01.2006") + "\n"
	return block
}

func (tb *TemplateBuilder) itemTable(items []*entity.InvoiceItem) (document.TableContent, error) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.Position),
			item.Description,
			item.Quantity.String(),
			item.Unit,
			tb.fmt.Amount(item.UnitPrice),
			tb.fmt.Amount(item.Total),
		})
	}
	return document.NewTableContent(invoiceItemHeaders, rows)
}

func (tb *TemplateBuilder) totalsTable(inv *entity.Invoice) (document.TableContent, error) {
	vatLabel := fmt.Sprintf("MwSt %s%%", inv.VATRate.String())
	return document.NewTableContent([]string{"", "Betrag"}, [][]string{
		{"Zwischentotal", tb.fmt.Format(inv.NetTotal)},
		{vatLabel, tb.fmt.Format(inv.VATTotal)},
		{"**Total**", tb.fmt.Format(inv.GrossTotal)},
	})
}
