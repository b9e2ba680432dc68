package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the
// balance deriver. Both queries aggregate server-side with a GROUP BY over
// journal lines joined to their entries, return unsigned debit/credit sums
// per account, and tolerate zero matching rows by returning an empty slice.
type ReportingRepository interface {
	// GroupedBalancesAsOf aggregates lines of entries dated on or before asOf.
	GroupedBalancesAsOf(ctx context.Context, businessID string, asOf time.Time) ([]domain.BalanceRow, error)

	// GroupedBalancesForPeriod aggregates lines of entries dated within
	// [from, to] inclusive.
	GroupedBalancesForPeriod(ctx context.Context, businessID string, from, to time.Time) ([]domain.BalanceRow, error)
}
