// Control report ("Kontrollbericht") layout, A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company + VAT no.   │  Report no. + Date           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROJECT: name, site address                                 │
//	│  CUSTOMER: name + contact                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Pos | Inspected item | Result | Remark               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONCLUSION (free text)                                      │
//	│  SIGNATURE: inspector name + date                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/wattwerk/wattwerk-api/internal/domain"
	"github.com/wattwerk/wattwerk-api/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ControlReportGenerator composes inspection protocols with Maroto v2.
// Reports are form-like structured documents, so they are laid out directly
// instead of going through the HTML pipeline.
type ControlReportGenerator struct{}

// NewControlReportGenerator builds the generator.
func NewControlReportGenerator() *ControlReportGenerator {
	return &ControlReportGenerator{}
}

// GenerateReportPDF composes the protocol and returns its bytes.
func (g *ControlReportGenerator) GenerateReportPDF(
	_ context.Context,
	report *entity.ControlReport,
	project *entity.Project,
	customer *entity.Customer,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Control Report "+report.Number, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(projectRow(project))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(findingsHeaderRow())
	for _, r := range findingsRows(report.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range conclusionRows(report.ConclusionMarkdown) {
		m.AddRows(r)
	}
	m.AddRows(signatureRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: compose control report: %v", domain.ErrRender, err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: company name + VAT no. (left), report number + date (right).
func headerRow(report *entity.ControlReport, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(company.VATNumber, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONTROL REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+report.Date.Format("02.01.2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// projectRow: inspected installation site.
func projectRow(project *entity.Project) core.Row {
	site := strings.TrimSpace(project.Street + ", " + project.ZipCode + " " + project.City)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("INSTALLATION / SITE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", project.Name, nonEmpty(site, "—")),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// customerRow: owner/operator of the installation.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("OWNER / OPERATOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Phone: %s",
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// findingsHeaderRow: table header, white on the primary color.
func findingsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Pos.", 1, align.Center),
		h("Inspected item", 6, align.Left),
		h("Result", 2, align.Center),
		h("Remark", 3, align.Left),
	)
}

// findingsRows: one row per inspected position; deficiencies in red.
func findingsRows(items []entity.ControlReportItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		resultColor := colorGray
		if it.Result == entity.FindingDeficient {
			resultColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Position),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Text,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				resultLabel(it.Result),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: resultColor, Style: fontstyle.Bold},
			)),
			col.New(3).Add(text.New(
				it.Remark,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// conclusionRows: free-text conclusion, one row per line.
func conclusionRows(conclusion string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONCLUSION", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, ln := range plainLines(conclusion) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(ln, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

// signatureRow: inspector name over a signature line.
func signatureRow(report *entity.ControlReport) core.Row {
	return row.New(24).Add(
		col.New(6),
		col.New(6).Add(
			text.New("________________________________", props.Text{
				Size: 9, Align: align.Right, Top: 12,
			}),
			text.New(fmt.Sprintf("%s, %s", report.InspectorName, report.Date.Format("02.01.2006")),
				props.Text{Size: 8, Align: align.Right, Top: 18, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func resultLabel(result string) string {
	switch result {
	case entity.FindingOK:
		return "OK"
	case entity.FindingDeficient:
		return "DEFICIENT"
	case entity.FindingNotApplicable:
		return "n/a"
	default:
		return result
	}
}

// plainLines strips markdown emphasis/heading markers and splits the text
// into non-empty lines; maroto renders plain text only.
func plainLines(s string) []string {
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		ln = strings.TrimLeft(ln, "#> ")
		ln = strings.ReplaceAll(ln, "**", "")
		ln = strings.ReplaceAll(ln, "*", "")
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
