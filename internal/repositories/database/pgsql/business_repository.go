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

type businessRepository struct {
	BaseRepository
}

func newBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepository {
	return &businessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRepository = (*businessRepository)(nil)

// FindBusinessByID retrieves a business including its opening capital.
func (r *businessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT business_id, name, opening_capital_pence, created_at FROM businesses WHERE business_id = $1`
	var business domain.Business
	err := r.Pool.QueryRow(ctx, query, businessID).Scan(
		&business.BusinessID, &business.Name, &business.OpeningCapitalPence, &business.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: business %s", apperrors.ErrNotFound, businessID)
		}
		return nil, apperrors.NewAppError(500, "failed to query business", err)
	}
	return &business, nil
}
