package services

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// StatementSvc derives financial statements from journal lines on demand.
// All three views are read-only; results may be served from a short-TTL cache
// that posting invalidates.
type StatementSvc interface {
	IncomeStatement(ctx context.Context, businessID string, from, to time.Time) (*domain.IncomeStatement, error)
	BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheet, error)
	Cashflow(ctx context.Context, businessID string, from, to time.Time) (*domain.CashflowStatement, error)
}

// RepairSvc detects and heals gaps between source documents and the journal.
// Every operation is idempotent: a second consecutive run reports zero.
type RepairSvc interface {
	RepairSalesJournalEntries(ctx context.Context, businessID, userID string) (*domain.RepairResult, error)
	RepairPurchaseJournalEntries(ctx context.Context, businessID, userID string) (*domain.RepairResult, error)
	CleanOrphanedJournalEntries(ctx context.Context, businessID, userID string) (*domain.CleanupResult, error)
}
