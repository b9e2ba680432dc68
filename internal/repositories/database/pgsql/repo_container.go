package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
		DocumentRepo:  newDocumentRepository(dbPool),
		BusinessRepo:  newBusinessRepository(dbPool),
	}
}
