package billing

import (
	"context"

	"github.com/wattwerk/wattwerk-api/internal/domain/repository"
)

// TxRunner runs a callback with an invoice repository bound to a database
// transaction. Issuing an invoice updates the header and rewrites the item
// snapshot; both must commit together.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}
