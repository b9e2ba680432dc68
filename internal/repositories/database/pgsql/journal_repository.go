package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// PgxJournalRepository persists journal entries and their lines.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const entryColumns = `journal_entry_id, business_id, description, reference_type, reference_id, entry_date, created_at, created_by`

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var refType string
	err := row.Scan(&entry.JournalEntryID, &entry.BusinessID, &entry.Description, &refType,
		&entry.ReferenceID, &entry.EntryDate, &entry.CreatedAt, &entry.CreatedBy)
	entry.ReferenceType = domain.ReferenceType(refType)
	return entry, err
}

// SaveEntry persists a journal entry and its lines in one database
// transaction. Readers see either the whole entry or none of it.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	entryQuery := `
		INSERT INTO journal_entries (journal_entry_id, business_id, description, reference_type, reference_id, entry_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.JournalEntryID,
		entry.BusinessID,
		entry.Description,
		string(entry.ReferenceType),
		entry.ReferenceID,
		entry.EntryDate,
		entry.CreatedAt,
		entry.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+entry.JournalEntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (journal_line_id, journal_entry_id, account_id, debit_pence, credit_pence)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range lines {
		batch.Queue(lineQuery, line.JournalLineID, line.JournalEntryID, line.AccountID, line.DebitPence, line.CreditPence)
	}
	results := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return apperrors.NewAppError(500, "failed to insert journal line", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to flush journal line batch", err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry by id.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE journal_entry_id = $1`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, journalEntryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
		}
		return nil, apperrors.NewAppError(500, "failed to query journal entry", err)
	}
	return &entry, nil
}

// FindEntryByReference retrieves the earliest entry recorded against a
// (referenceType, referenceID) pair, or nil when none exists.
func (r *PgxJournalRepository) FindEntryByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE business_id = $1 AND reference_type = $2 AND reference_id = $3
		ORDER BY created_at
		LIMIT 1
	`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, businessID, string(refType), refID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to query journal entry by reference", err)
	}
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, journalEntryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT journal_line_id, journal_entry_id, account_id, debit_pence, credit_pence
		FROM journal_lines
		WHERE journal_entry_id = $1
		ORDER BY journal_line_id
	`
	rows, err := r.Pool.Query(ctx, query, journalEntryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(&line.JournalLineID, &line.JournalEntryID, &line.AccountID, &line.DebitPence, &line.CreditPence); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal line rows", err)
	}
	return lines, nil
}

// FindOrphanedEntries finds entries whose referenced source document no
// longer exists. Only document-backed reference types can orphan; manual and
// expense entries have no document to lose.
func (r *PgxJournalRepository) FindOrphanedEntries(ctx context.Context, businessID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries e
		WHERE e.business_id = $1
			AND e.reference_id IS NOT NULL
			AND (
				(e.reference_type = 'SALES_INVOICE' AND NOT EXISTS (
					SELECT 1 FROM sales_invoices s WHERE s.sale_invoice_id = e.reference_id
				))
				OR
				(e.reference_type = 'PURCHASE_INVOICE' AND NOT EXISTS (
					SELECT 1 FROM purchase_invoices p WHERE p.purchase_invoice_id = e.reference_id
				))
			)
		ORDER BY e.created_at
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query orphaned journal entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal entry rows", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry and its lines together. Lines first, entry
// second, one transaction.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, journalEntryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_entry_id = $1`, journalEntryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete journal lines for entry "+journalEntryID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE journal_entry_id = $1`, journalEntryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+journalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
	}

	return r.Commit(ctx, tx)
}
