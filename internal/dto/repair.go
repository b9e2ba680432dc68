package dto

// RepairResponse reports how many journal entries a backfill run created.
type RepairResponse struct {
	Repaired int `json:"repaired"`
}

// CleanupResponse reports how many orphaned entries a cleanup run removed.
type CleanupResponse struct {
	Cleaned int `json:"cleaned"`
}
