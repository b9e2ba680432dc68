package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

// postingService assembles the business-specific posting recipes on top of
// the low-level ledger poster. It owns the one-entry-per-document policy:
// before posting it checks for an existing entry against the same reference
// and returns that entry instead of posting a duplicate, which is what makes
// repair backfill safe to re-run.
type postingService struct {
	BaseService
	ledger      portssvc.LedgerSvc
	journalRepo portsrepo.JournalReader
}

// NewPostingService creates the transaction posting service.
func NewPostingService(ledger portssvc.LedgerSvc, journalRepo portsrepo.JournalReader) portssvc.PostingSvc {
	return &postingService{
		ledger:      ledger,
		journalRepo: journalRepo,
	}
}

var _ portssvc.PostingSvc = (*postingService)(nil)

// RecordSale posts the journal entry for a finalized sale invoice. When an
// entry already exists for the invoice it is returned unchanged.
func (s *postingService) RecordSale(ctx context.Context, inv domain.SaleInvoice, userID string) (*domain.JournalEntry, error) {
	existing, err := s.journalRepo.FindEntryByReference(ctx, inv.BusinessID, domain.RefSalesInvoice, inv.SaleInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing entry for sale %s: %w", inv.SaleInvoiceID, err)
	}
	if existing != nil {
		s.LogInfo(ctx, "Sale already posted, skipping",
			slog.String("sale_invoice_id", inv.SaleInvoiceID),
			slog.String("journal_entry_id", existing.JournalEntryID))
		return existing, nil
	}

	refID := inv.SaleInvoiceID
	return s.ledger.PostJournalEntry(ctx, portssvc.PostJournalEntryInput{
		BusinessID:    inv.BusinessID,
		Description:   fmt.Sprintf("Sale %s", inv.SaleInvoiceID),
		ReferenceType: domain.RefSalesInvoice,
		ReferenceID:   &refID,
		EntryDate:     inv.FinalizedAt,
		Lines:         accounting.SaleLines(inv),
		CreatedBy:     userID,
	})
}

// RecordPurchase posts the journal entry for a finalized purchase invoice.
// When an entry already exists for the invoice it is returned unchanged.
func (s *postingService) RecordPurchase(ctx context.Context, inv domain.PurchaseInvoice, userID string) (*domain.JournalEntry, error) {
	existing, err := s.journalRepo.FindEntryByReference(ctx, inv.BusinessID, domain.RefPurchaseInvoice, inv.PurchaseInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing entry for purchase %s: %w", inv.PurchaseInvoiceID, err)
	}
	if existing != nil {
		s.LogInfo(ctx, "Purchase already posted, skipping",
			slog.String("purchase_invoice_id", inv.PurchaseInvoiceID),
			slog.String("journal_entry_id", existing.JournalEntryID))
		return existing, nil
	}

	refID := inv.PurchaseInvoiceID
	return s.ledger.PostJournalEntry(ctx, portssvc.PostJournalEntryInput{
		BusinessID:    inv.BusinessID,
		Description:   fmt.Sprintf("Purchase %s", inv.PurchaseInvoiceID),
		ReferenceType: domain.RefPurchaseInvoice,
		ReferenceID:   &refID,
		EntryDate:     inv.FinalizedAt,
		Lines:         accounting.PurchaseLines(inv),
		CreatedBy:     userID,
	})
}

// RecordExpense posts an operating expense paid through the given payments.
func (s *postingService) RecordExpense(ctx context.Context, businessID, description string, amountPence int64, payments []domain.Payment, entryDate time.Time, userID string) (*domain.JournalEntry, error) {
	return s.ledger.PostJournalEntry(ctx, portssvc.PostJournalEntryInput{
		BusinessID:    businessID,
		Description:   description,
		ReferenceType: domain.RefExpense,
		EntryDate:     entryDate,
		Lines:         accounting.ExpenseLines(amountPence, payments),
		CreatedBy:     userID,
	})
}
