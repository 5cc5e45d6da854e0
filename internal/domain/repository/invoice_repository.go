package repository

import "github.com/wattwerk/wattwerk-api/internal/domain/entity"

// InvoiceRepository persistence for invoice headers and their item snapshots.
// Item rows belong to exactly one invoice; the snapshot written at issuance
// is what ISSUED and later states render from.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	Update(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByCompany(companyID string) ([]*entity.Invoice, error)
	ListByProject(projectID string) ([]*entity.Invoice, error)

	CreateItem(item *entity.InvoiceItem) error
	ReplaceItems(invoiceID string, items []*entity.InvoiceItem) error
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
}
