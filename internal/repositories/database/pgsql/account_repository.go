package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

// PgxAccountRepository persists chart-of-accounts data.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, business_id, code, name, account_type, created_at`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var acc domain.Account
	var accountType string
	err := row.Scan(&acc.AccountID, &acc.BusinessID, &acc.Code, &acc.Name, &accountType, &acc.CreatedAt)
	acc.AccountType = domain.AccountType(accountType)
	return acc, err
}

// FindAccountsByBusiness retrieves every account in a business's chart.
func (r *PgxAccountRepository) FindAccountsByBusiness(ctx context.Context, businessID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 ORDER BY code`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account rows", err)
	}
	return accounts, nil
}

// FindAccountsByCodes resolves symbolic codes to accounts for a business.
// Missing codes are simply absent from the result map.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 AND code = ANY($2)`
	rows, err := r.Pool.Query(ctx, query, businessID, codes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by code", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(codes))
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[acc.Code] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account rows", err)
	}
	return accounts, nil
}

// SaveAccountsIfMissing inserts accounts, skipping any whose (business, code)
// pair already exists. Concurrent seeding of the same business is therefore
// harmless.
func (r *PgxAccountRepository) SaveAccountsIfMissing(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO accounts (account_id, business_id, code, name, account_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (business_id, code) DO NOTHING;
	`
	for _, acc := range accounts {
		batch.Queue(query, acc.AccountID, acc.BusinessID, acc.Code, acc.Name, string(acc.AccountType), acc.CreatedAt)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range accounts {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert account", err)
		}
	}
	return nil
}
