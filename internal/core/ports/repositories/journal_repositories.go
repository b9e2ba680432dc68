package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// FindEntryByReference retrieves the first journal entry recorded against
	// a (referenceType, referenceID) pair, or nil when none exists. Used by
	// callers for the soft one-entry-per-document check.
	FindEntryByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of a journal entry.
	FindLinesByEntryID(ctx context.Context, journalEntryID string) ([]domain.JournalLine, error)

	// FindOrphanedEntries finds journal entries whose referenceID no longer
	// matches any existing source document of the matching type.
	FindOrphanedEntries(ctx context.Context, businessID string) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveEntry persists a journal entry and its lines atomically. Readers
	// see either the whole entry or none of it.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// DeleteEntry removes a journal entry together with its lines atomically.
	// Reserved for the orphan-cleanup path.
	DeleteEntry(ctx context.Context, journalEntryID string) error
}

// JournalRepository combines all journal repository operations.
type JournalRepository interface {
	JournalReader
	JournalWriter
}
