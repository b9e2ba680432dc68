package domain

import "time"

// Business is the tenant boundary for the ledger. OpeningCapitalPence is the
// owner's initial cash injection; it is not backed by a journal entry and is
// folded into the derived statements as an explicit adjustment term.
type Business struct {
	BusinessID          string    `json:"businessID"` // Primary key (UUID)
	Name                string    `json:"name"`
	OpeningCapitalPence int64     `json:"openingCapitalPence"`
	CreatedAt           time.Time `json:"createdAt"`
}
