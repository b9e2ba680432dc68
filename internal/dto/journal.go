package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// JournalLineRequest is one coded line of a posting request.
type JournalLineRequest struct {
	AccountCode string `json:"accountCode" binding:"required"`
	DebitPence  int64  `json:"debitPence" binding:"min=0"`
	CreditPence int64  `json:"creditPence" binding:"min=0"`
}

// PostJournalEntryRequest defines the payload for posting a journal entry.
type PostJournalEntryRequest struct {
	Description   string               `json:"description"`
	ReferenceType string               `json:"referenceType" binding:"required,reference_type"`
	ReferenceID   *string              `json:"referenceID"`
	EntryDate     string               `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Lines         []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToCodedLines converts the request lines to domain coded lines.
func (r *PostJournalEntryRequest) ToCodedLines() []domain.CodedLine {
	lines := make([]domain.CodedLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.CodedLine{
			AccountCode: l.AccountCode,
			DebitPence:  l.DebitPence,
			CreditPence: l.CreditPence,
		}
	}
	return lines
}

// JournalEntryResponse defines the data returned for a posted journal entry.
type JournalEntryResponse struct {
	JournalEntryID string    `json:"journalEntryID"`
	BusinessID     string    `json:"businessID"`
	Description    string    `json:"description"`
	ReferenceType  string    `json:"referenceType"`
	ReferenceID    *string   `json:"referenceID,omitempty"`
	EntryDate      time.Time `json:"entryDate"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		JournalEntryID: entry.JournalEntryID,
		BusinessID:     entry.BusinessID,
		Description:    entry.Description,
		ReferenceType:  string(entry.ReferenceType),
		ReferenceID:    entry.ReferenceID,
		EntryDate:      entry.EntryDate,
		CreatedAt:      entry.CreatedAt,
		CreatedBy:      entry.CreatedBy,
	}
}
