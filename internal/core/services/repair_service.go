package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/metrics"
	"github.com/shopledger/shop_ledger_app/internal/platform/cache"
)

// AuditRecorder is the fire-and-forget sink repair runs report to.
type AuditRecorder interface {
	Record(actorID, event string, properties map[string]any)
}

// repairService detects and heals the two gaps the soft document reference
// allows: documents that never got a journal entry, and journal entries whose
// document has since been deleted. Both operations are idempotent and loop
// sequentially so one bad document cannot abort a whole run.
type repairService struct {
	BaseService
	docRepo     portsrepo.DocumentRepository
	journalRepo portsrepo.JournalRepository
	posting     portssvc.PostingSvc
	cache       *cache.StatementCache
	audit       AuditRecorder
}

// NewRepairService creates the reconciliation service. Cache and audit may be
// nil (tests).
func NewRepairService(docRepo portsrepo.DocumentRepository, journalRepo portsrepo.JournalRepository, posting portssvc.PostingSvc, statementCache *cache.StatementCache, auditRecorder AuditRecorder) portssvc.RepairSvc {
	return &repairService{
		docRepo:     docRepo,
		journalRepo: journalRepo,
		posting:     posting,
		cache:       statementCache,
		audit:       auditRecorder,
	}
}

var _ portssvc.RepairSvc = (*repairService)(nil)

// RepairSalesJournalEntries backfills a journal entry for every finalized
// sale invoice that has none. Per-document failures are logged and skipped;
// the reported count reflects successes only.
func (s *repairService) RepairSalesJournalEntries(ctx context.Context, businessID, userID string) (*domain.RepairResult, error) {
	invoices, err := s.docRepo.ListSalesMissingEntry(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sales missing journal entries: %w", err)
	}

	repaired := 0
	for _, inv := range invoices {
		if _, err := s.posting.RecordSale(ctx, inv, userID); err != nil {
			s.LogError(ctx, err, "Failed to backfill journal entry for sale",
				slog.String("business_id", businessID),
				slog.String("sale_invoice_id", inv.SaleInvoiceID))
			continue
		}
		repaired++
		metrics.RepairedEntries.WithLabelValues(string(domain.RefSalesInvoice)).Inc()
	}

	s.recordRepair(ctx, userID, "ledger_repair_sales", businessID, len(invoices), repaired)
	return &domain.RepairResult{Repaired: repaired}, nil
}

// RepairPurchaseJournalEntries backfills a journal entry for every finalized
// purchase invoice that has none.
func (s *repairService) RepairPurchaseJournalEntries(ctx context.Context, businessID, userID string) (*domain.RepairResult, error) {
	invoices, err := s.docRepo.ListPurchasesMissingEntry(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases missing journal entries: %w", err)
	}

	repaired := 0
	for _, inv := range invoices {
		if _, err := s.posting.RecordPurchase(ctx, inv, userID); err != nil {
			s.LogError(ctx, err, "Failed to backfill journal entry for purchase",
				slog.String("business_id", businessID),
				slog.String("purchase_invoice_id", inv.PurchaseInvoiceID))
			continue
		}
		repaired++
		metrics.RepairedEntries.WithLabelValues(string(domain.RefPurchaseInvoice)).Inc()
	}

	s.recordRepair(ctx, userID, "ledger_repair_purchases", businessID, len(invoices), repaired)
	return &domain.RepairResult{Repaired: repaired}, nil
}

// CleanOrphanedJournalEntries deletes journal entries whose referenced source
// document no longer exists, each entry together with its lines atomically.
func (s *repairService) CleanOrphanedJournalEntries(ctx context.Context, businessID, userID string) (*domain.CleanupResult, error) {
	orphans, err := s.journalRepo.FindOrphanedEntries(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned journal entries: %w", err)
	}

	cleaned := 0
	for _, entry := range orphans {
		if err := s.journalRepo.DeleteEntry(ctx, entry.JournalEntryID); err != nil {
			s.LogError(ctx, err, "Failed to delete orphaned journal entry",
				slog.String("business_id", businessID),
				slog.String("journal_entry_id", entry.JournalEntryID))
			continue
		}
		cleaned++
		metrics.CleanedEntries.Inc()
	}

	if cleaned > 0 && s.cache != nil {
		s.cache.Invalidate(businessID)
	}
	if s.audit != nil {
		s.audit.Record(userID, "ledger_clean_orphans", map[string]any{
			"business_id": businessID,
			"found":       len(orphans),
			"cleaned":     cleaned,
		})
	}
	s.LogInfo(ctx, "Orphaned journal entries cleaned",
		slog.String("business_id", businessID),
		slog.Int("found", len(orphans)),
		slog.Int("cleaned", cleaned))
	return &domain.CleanupResult{Cleaned: cleaned}, nil
}

func (s *repairService) recordRepair(ctx context.Context, userID, event, businessID string, found, repaired int) {
	if s.audit != nil {
		s.audit.Record(userID, event, map[string]any{
			"business_id": businessID,
			"found":       found,
			"repaired":    repaired,
		})
	}
	s.LogInfo(ctx, "Repair run completed",
		slog.String("event", event),
		slog.String("business_id", businessID),
		slog.Int("found", found),
		slog.Int("repaired", repaired))
}
