package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/metrics"
	"github.com/shopledger/shop_ledger_app/internal/platform/cache"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

// ledgerService implements the LedgerSvc interface.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	journalRepo portsrepo.JournalRepository
	cache       *cache.StatementCache
}

// NewLedgerService creates the journal posting service. The cache may be nil
// when no statement caching is wired (tests).
func NewLedgerService(accountRepo portsrepo.AccountRepository, journalRepo portsrepo.JournalRepository, statementCache *cache.StatementCache) portssvc.LedgerSvc {
	return &ledgerService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		cache:       statementCache,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// EnsureChartOfAccounts idempotently creates any missing standard accounts
// for a business. Safe to call on every business setup and before repair.
func (s *ledgerService) EnsureChartOfAccounts(ctx context.Context, businessID string) error {
	existing, err := s.accountRepo.FindAccountsByBusiness(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to load chart of accounts for business %s: %w", businessID, err)
	}

	have := make(map[string]struct{}, len(existing))
	for _, acc := range existing {
		have[acc.Code] = struct{}{}
	}

	now := time.Now().UTC()
	var missing []domain.Account
	for _, std := range domain.StandardChart {
		if _, ok := have[std.Code]; ok {
			continue
		}
		missing = append(missing, domain.Account{
			AccountID:   uuid.NewString(),
			BusinessID:  businessID,
			Code:        std.Code,
			Name:        std.Name,
			AccountType: std.Type,
			CreatedAt:   now,
		})
	}
	if len(missing) == 0 {
		return nil
	}

	if err := s.accountRepo.SaveAccountsIfMissing(ctx, missing); err != nil {
		return fmt.Errorf("failed to seed chart of accounts for business %s: %w", businessID, err)
	}
	s.LogInfo(ctx, "Seeded missing chart-of-accounts entries",
		slog.String("business_id", businessID),
		slog.Int("created", len(missing)))
	return nil
}

// PostJournalEntry validates and persists one balanced entry with its lines
// in a single atomic write, then invalidates the business's cached statement
// views. Deduplication against an existing entry for the same reference is
// deliberately the caller's policy, so reversals against the same document
// stay possible.
func (s *ledgerService) PostJournalEntry(ctx context.Context, input portssvc.PostJournalEntryInput) (*domain.JournalEntry, error) {
	if err := accounting.ValidateEntryLines(input.Lines); err != nil {
		metrics.JournalPostFailures.WithLabelValues("validation").Inc()
		return nil, err
	}

	accounts, err := s.resolveAccounts(ctx, input.BusinessID, input.Lines)
	if err != nil {
		metrics.JournalPostFailures.WithLabelValues("account_resolution").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	entryDate := input.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}

	entry := domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		BusinessID:     input.BusinessID,
		Description:    input.Description,
		ReferenceType:  input.ReferenceType,
		ReferenceID:    input.ReferenceID,
		EntryDate:      entryDate,
		CreatedAt:      now,
		CreatedBy:      input.CreatedBy,
	}

	lines := make([]domain.JournalLine, 0, len(input.Lines))
	for _, l := range input.Lines {
		lines = append(lines, domain.JournalLine{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      accounts[l.AccountCode].AccountID,
			DebitPence:     l.DebitPence,
			CreditPence:    l.CreditPence,
		})
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		metrics.JournalPostFailures.WithLabelValues("write").Inc()
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(input.BusinessID)
	}
	metrics.JournalEntriesPosted.WithLabelValues(string(entry.ReferenceType)).Inc()
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("business_id", input.BusinessID),
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("reference_type", string(entry.ReferenceType)),
		slog.Int("line_count", len(lines)))

	return &entry, nil
}

// ReverseJournalEntry posts a mirror entry with every debit and credit
// swapped, against the same reference as the original. Entries are never
// updated in place.
func (s *ledgerService) ReverseJournalEntry(ctx context.Context, businessID, journalEntryID, userID string) (*domain.JournalEntry, error) {
	original, err := s.journalRepo.FindEntryByID(ctx, journalEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", journalEntryID, err)
	}
	if original.BusinessID != businessID {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, journalEntryID)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, journalEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for journal entry %s: %w", journalEntryID, err)
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		JournalEntryID: uuid.NewString(),
		BusinessID:     businessID,
		Description:    fmt.Sprintf("Reversal of %s", original.Description),
		ReferenceType:  original.ReferenceType,
		ReferenceID:    original.ReferenceID,
		EntryDate:      now,
		CreatedAt:      now,
		CreatedBy:      userID,
	}
	lines := make([]domain.JournalLine, 0, len(originalLines))
	for _, l := range originalLines {
		lines = append(lines, domain.JournalLine{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      l.AccountID,
			DebitPence:     l.CreditPence,
			CreditPence:    l.DebitPence,
		})
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		metrics.JournalPostFailures.WithLabelValues("write").Inc()
		return nil, fmt.Errorf("failed to save reversing entry: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(businessID)
	}
	metrics.JournalEntriesPosted.WithLabelValues(string(entry.ReferenceType)).Inc()
	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("business_id", businessID),
		slog.String("original_entry_id", journalEntryID),
		slog.String("reversing_entry_id", entry.JournalEntryID))

	return &entry, nil
}

// resolveAccounts maps the coded lines' account codes to accounts, failing
// with ErrChartNotSeeded when the business has no chart at all and with
// UnknownAccountCodeError for individual misses.
func (s *ledgerService) resolveAccounts(ctx context.Context, businessID string, lines []domain.CodedLine) (map[string]domain.Account, error) {
	codes := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountCode]; ok {
			continue
		}
		seen[l.AccountCode] = struct{}{}
		codes = append(codes, l.AccountCode)
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, businessID, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account codes for business %s: %w", businessID, err)
	}
	if len(accounts) == 0 && len(codes) > 0 {
		return nil, fmt.Errorf("%w: business %s", apperrors.ErrChartNotSeeded, businessID)
	}
	for _, code := range codes {
		if _, ok := accounts[code]; !ok {
			return nil, &apperrors.UnknownAccountCodeError{BusinessID: businessID, AccountCode: code}
		}
	}
	return accounts, nil
}
