package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// documentRepository reads the sale and purchase documents the ledger posts
// against. The documents' own CRUD surface lives outside this core.
type documentRepository struct {
	BaseRepository
}

func newDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository {
	return &documentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepository = (*documentRepository)(nil)

// ListSalesMissingEntry finds finalized sale invoices with no SALES_INVOICE
// journal entry. The anti-join is what makes repair idempotent: once an
// invoice is backfilled it stops matching.
func (r *documentRepository) ListSalesMissingEntry(ctx context.Context, businessID string) ([]domain.SaleInvoice, error) {
	query := `
		SELECT s.sale_invoice_id, s.business_id, s.subtotal_pence, s.vat_pence, s.total_pence, s.cogs_pence, s.finalized_at
		FROM sales_invoices s
		WHERE s.business_id = $1
			AND s.finalized_at IS NOT NULL
			AND NOT EXISTS (
				SELECT 1 FROM journal_entries e
				WHERE e.business_id = s.business_id
					AND e.reference_type = 'SALES_INVOICE'
					AND e.reference_id = s.sale_invoice_id
			)
		ORDER BY s.finalized_at
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales missing journal entries", err)
	}
	defer rows.Close()

	var invoices []domain.SaleInvoice
	ids := make([]string, 0)
	for rows.Next() {
		var inv domain.SaleInvoice
		if err := rows.Scan(&inv.SaleInvoiceID, &inv.BusinessID, &inv.SubtotalPence, &inv.VATPence, &inv.TotalPence, &inv.COGSPence, &inv.FinalizedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale invoice row", err)
		}
		invoices = append(invoices, inv)
		ids = append(ids, inv.SaleInvoiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate sale invoice rows", err)
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	payments, err := r.loadPayments(ctx, `SELECT sale_invoice_id, method, amount_pence FROM sales_payments WHERE sale_invoice_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Payments = payments[invoices[i].SaleInvoiceID]
	}
	return invoices, nil
}

// ListPurchasesMissingEntry finds finalized purchase invoices with no
// PURCHASE_INVOICE journal entry.
func (r *documentRepository) ListPurchasesMissingEntry(ctx context.Context, businessID string) ([]domain.PurchaseInvoice, error) {
	query := `
		SELECT p.purchase_invoice_id, p.business_id, p.subtotal_pence, p.vat_pence, p.total_pence, p.finalized_at
		FROM purchase_invoices p
		WHERE p.business_id = $1
			AND p.finalized_at IS NOT NULL
			AND NOT EXISTS (
				SELECT 1 FROM journal_entries e
				WHERE e.business_id = p.business_id
					AND e.reference_type = 'PURCHASE_INVOICE'
					AND e.reference_id = p.purchase_invoice_id
			)
		ORDER BY p.finalized_at
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchases missing journal entries", err)
	}
	defer rows.Close()

	var invoices []domain.PurchaseInvoice
	ids := make([]string, 0)
	for rows.Next() {
		var inv domain.PurchaseInvoice
		if err := rows.Scan(&inv.PurchaseInvoiceID, &inv.BusinessID, &inv.SubtotalPence, &inv.VATPence, &inv.TotalPence, &inv.FinalizedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase invoice row", err)
		}
		invoices = append(invoices, inv)
		ids = append(ids, inv.PurchaseInvoiceID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate purchase invoice rows", err)
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	payments, err := r.loadPayments(ctx, `SELECT purchase_invoice_id, method, amount_pence FROM purchase_payments WHERE purchase_invoice_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Payments = payments[invoices[i].PurchaseInvoiceID]
	}
	return invoices, nil
}

func (r *documentRepository) loadPayments(ctx context.Context, query string, ids []string) (map[string][]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document payments", err)
	}
	defer rows.Close()

	payments := make(map[string][]domain.Payment, len(ids))
	for rows.Next() {
		var documentID, method string
		var amountPence int64
		if err := rows.Scan(&documentID, &method, &amountPence); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments[documentID] = append(payments[documentID], domain.Payment{
			Method:      domain.PaymentMethod(method),
			AmountPence: amountPence,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate payment rows", err)
	}
	return payments, nil
}
