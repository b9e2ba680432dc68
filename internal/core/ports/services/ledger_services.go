package services

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// PostJournalEntryInput carries everything needed to post one balanced entry.
// Lines are addressed by symbolic account code; the service resolves them
// against the business's chart of accounts.
type PostJournalEntryInput struct {
	BusinessID    string
	Description   string
	ReferenceType domain.ReferenceType
	ReferenceID   *string
	EntryDate     time.Time
	Lines         []domain.CodedLine
	CreatedBy     string
}

// LedgerSvc is the low-level journal posting primitive plus chart seeding.
type LedgerSvc interface {
	// PostJournalEntry validates and persists one balanced entry atomically,
	// then invalidates the business's cached statement views. It does not
	// check for an existing entry against the same reference; that pre-check
	// is the caller's policy.
	PostJournalEntry(ctx context.Context, input PostJournalEntryInput) (*domain.JournalEntry, error)

	// EnsureChartOfAccounts idempotently creates any missing standard
	// accounts for a business. Must run before the first post for a business.
	EnsureChartOfAccounts(ctx context.Context, businessID string) error

	// ReverseJournalEntry posts a mirror entry (debits and credits swapped)
	// against the same reference, correcting a posted entry without ever
	// updating it in place.
	ReverseJournalEntry(ctx context.Context, businessID, journalEntryID, userID string) (*domain.JournalEntry, error)
}

// PostingSvc assembles the business-specific posting recipes. The
// transaction-finalize flows call it directly; the repair service reuses it
// when backfilling.
type PostingSvc interface {
	RecordSale(ctx context.Context, inv domain.SaleInvoice, userID string) (*domain.JournalEntry, error)
	RecordPurchase(ctx context.Context, inv domain.PurchaseInvoice, userID string) (*domain.JournalEntry, error)
	RecordExpense(ctx context.Context, businessID, description string, amountPence int64, payments []domain.Payment, entryDate time.Time, userID string) (*domain.JournalEntry, error)
}
