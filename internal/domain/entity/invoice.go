package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle states. Transitions: DRAFT -> ISSUED -> {PAID, CANCELLED}.
// Once an invoice leaves DRAFT its line items are frozen as a snapshot and
// re-rendering must reproduce the issued content.
const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusIssued    = "ISSUED"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusCancelled = "CANCELLED"
)

// Invoice is the billing header for a project.
type Invoice struct {
	ID             string
	CompanyID      string
	CustomerID     string
	ProjectID      string
	Number         string
	Date           time.Time
	DueDate        time.Time
	Status         string
	VATRate        decimal.Decimal // percent
	NetTotal       decimal.Decimal
	VATTotal       decimal.Decimal
	GrossTotal     decimal.Decimal
	TermsMarkdown  string // payment terms block, rendered below the totals
	FooterMarkdown string
	IssuedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Mutable reports whether line items may still be recomputed from live
// project data. Only drafts are mutable; every later state renders from
// the persisted snapshot.
func (i *Invoice) Mutable() bool {
	return i.Status == InvoiceStatusDraft
}

// ValidTransition reports whether the status change is allowed.
func ValidTransition(from, to string) bool {
	switch from {
	case InvoiceStatusDraft:
		return to == InvoiceStatusIssued || to == InvoiceStatusCancelled
	case InvoiceStatusIssued:
		return to == InvoiceStatusPaid || to == InvoiceStatusCancelled
	default:
		return false
	}
}

// InvoiceItem is one frozen line of an invoice snapshot. A line belongs to
// exactly one invoice; there are no back-references to live project records.
const (
	InvoiceItemKindMaterial = "MATERIAL"
	InvoiceItemKindLabor    = "LABOR"
	InvoiceItemKindCatalog  = "CATALOG"
)

type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Position    int
	Kind        string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}
