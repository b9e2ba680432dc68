package services

// ServiceContainer bundles the service interfaces wired at startup.
type ServiceContainer struct {
	Ledger     LedgerSvc
	Posting    PostingSvc
	Statements StatementSvc
	Repair     RepairSvc
}
