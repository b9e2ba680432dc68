package repositories

// RepositoryProvider bundles the concrete repositories wired at startup.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	ReportingRepo ReportingRepository
	DocumentRepo  DocumentRepository
	BusinessRepo  BusinessRepository
}
