package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountsByBusiness retrieves every account in a business's chart.
	FindAccountsByBusiness(ctx context.Context, businessID string) ([]domain.Account, error)

	// FindAccountsByCodes resolves symbolic codes to accounts for a business.
	// Codes with no matching account are simply absent from the result map;
	// callers decide whether that is an error.
	FindAccountsByCodes(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccountsIfMissing inserts the given accounts, skipping any whose
	// (business_id, code) already exists. Used by the idempotent chart seeding.
	SaveAccountsIfMissing(ctx context.Context, accounts []domain.Account) error
}

// AccountRepository combines all account repository operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
