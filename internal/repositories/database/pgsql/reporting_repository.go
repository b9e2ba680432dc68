package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// reportingRepository implements the aggregation queries behind the balance
// deriver. Everything here is read-only.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GroupedBalancesAsOf aggregates debit/credit sums per account over all
// entries dated on or before asOf.
func (r *reportingRepository) GroupedBalancesAsOf(ctx context.Context, businessID string, asOf time.Time) ([]domain.BalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(l.debit_pence), 0) AS total_debit,
			COALESCE(SUM(l.credit_pence), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON l.journal_entry_id = e.journal_entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.business_id = $1
			AND e.entry_date <= $2
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code
	`
	return r.queryBalanceRows(ctx, query, businessID, asOf)
}

// GroupedBalancesForPeriod aggregates debit/credit sums per account over
// entries dated within [from, to] inclusive.
func (r *reportingRepository) GroupedBalancesForPeriod(ctx context.Context, businessID string, from, to time.Time) ([]domain.BalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(l.debit_pence), 0) AS total_debit,
			COALESCE(SUM(l.credit_pence), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON l.journal_entry_id = e.journal_entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.business_id = $1
			AND e.entry_date BETWEEN $2 AND $3
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code
	`
	return r.queryBalanceRows(ctx, query, businessID, from, to)
}

func (r *reportingRepository) queryBalanceRows(ctx context.Context, query string, args ...any) ([]domain.BalanceRow, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying grouped balances: %w", err)
	}
	defer rows.Close()

	result, err := scanBalanceRows(rows)
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		// A business with no journal lines yet reports zeros, not an error.
		return []domain.BalanceRow{}, nil
	}
	return result, nil
}

func scanBalanceRows(rows pgx.Rows) ([]domain.BalanceRow, error) {
	var result []domain.BalanceRow
	for rows.Next() {
		var row domain.BalanceRow
		var accountType string
		if err := rows.Scan(&row.AccountID, &row.Code, &row.Name, &accountType, &row.DebitPence, &row.CreditPence); err != nil {
			return nil, fmt.Errorf("error scanning balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}
	return result, nil
}
