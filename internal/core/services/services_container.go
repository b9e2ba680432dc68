package services

import (
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/platform/cache"
)

// NewServiceContainer wires the concrete services over the repository
// provider. Posting and repair share the same ledger primitive so the
// backfill path produces exactly the entries normal traffic would have.
func NewServiceContainer(repos portsrepo.RepositoryProvider, statementCache *cache.StatementCache, auditRecorder AuditRecorder) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.AccountRepo, repos.JournalRepo, statementCache)
	posting := NewPostingService(ledger, repos.JournalRepo)

	return &portssvc.ServiceContainer{
		Ledger:     ledger,
		Posting:    posting,
		Statements: NewStatementService(repos.ReportingRepo, repos.BusinessRepo, statementCache),
		Repair:     NewRepairService(repos.DocumentRepo, repos.JournalRepo, posting, statementCache, auditRecorder),
	}
}
