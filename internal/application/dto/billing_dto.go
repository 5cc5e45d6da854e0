package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body for POST /api/projects/:id/invoices. The draft's
// line items are aggregated from the project's current material, catalog and
// time records; terms and footer are free markdown blocks.
type CreateInvoiceRequest struct {
	DueInDays      int              `json:"due_in_days,omitempty" validate:"omitempty,min=0,max=365"`
	VATRate        *decimal.Decimal `json:"vat_rate,omitempty"`
	TermsMarkdown  string           `json:"terms_markdown,omitempty"`
	FooterMarkdown string           `json:"footer_markdown,omitempty"`
}

// InvoiceResponse invoice header with items for GET /api/invoices/:id.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	ProjectID      string                `json:"project_id"`
	CustomerID     string                `json:"customer_id"`
	Number         string                `json:"number"`
	Date           string                `json:"date"`
	DueDate        string                `json:"due_date"`
	Status         string                `json:"status"`
	VATRate        decimal.Decimal       `json:"vat_rate"`
	NetTotal       decimal.Decimal       `json:"net_total"`
	VATTotal       decimal.Decimal       `json:"vat_total"`
	GrossTotal     decimal.Decimal       `json:"gross_total"`
	TermsMarkdown  string                `json:"terms_markdown,omitempty"`
	FooterMarkdown string                `json:"footer_markdown,omitempty"`
	IssuedAt       string                `json:"issued_at,omitempty"`
	Items          []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse one invoice line in the response.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Position    int             `json:"position"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}
