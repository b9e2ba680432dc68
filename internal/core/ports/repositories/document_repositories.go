package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// DocumentRepository reads the source-of-truth sale and purchase documents
// the ledger posts against. The documents' CRUD surface lives outside this
// core; only the amounts needed for posting and repair are read here.
type DocumentRepository interface {
	// ListSalesMissingEntry finds finalized sale invoices whose id does not
	// appear as a referenceID among SALES_INVOICE journal entries.
	ListSalesMissingEntry(ctx context.Context, businessID string) ([]domain.SaleInvoice, error)

	// ListPurchasesMissingEntry finds finalized purchase invoices whose id
	// does not appear as a referenceID among PURCHASE_INVOICE journal entries.
	ListPurchasesMissingEntry(ctx context.Context, businessID string) ([]domain.PurchaseInvoice, error)
}

// BusinessRepository reads business records.
type BusinessRepository interface {
	// FindBusinessByID retrieves a business, including its opening capital.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
}
