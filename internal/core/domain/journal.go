package domain

import "time"

// ReferenceType identifies the kind of source document a journal entry was
// posted against.
type ReferenceType string

const (
	RefSalesInvoice    ReferenceType = "SALES_INVOICE"
	RefPurchaseInvoice ReferenceType = "PURCHASE_INVOICE"
	RefExpense         ReferenceType = "EXPENSE"
	RefManual          ReferenceType = "MANUAL"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple journal lines. ReferenceID is a soft reference to the source
// document: no foreign key backs it, and at most one entry is expected per
// (ReferenceType, ReferenceID) pair. That expectation is maintained by the
// callers' existence checks and healed by the repair service, not enforced
// by the schema.
type JournalEntry struct {
	JournalEntryID string        `json:"journalEntryID"` // Primary key (UUID)
	BusinessID     string        `json:"businessID"`     // FK -> businesses.business_id
	Description    string        `json:"description"`
	ReferenceType  ReferenceType `json:"referenceType"`
	ReferenceID    *string       `json:"referenceID"` // Nullable soft FK to a source document
	EntryDate      time.Time     `json:"entryDate"`   // Date the event occurred
	CreatedAt      time.Time     `json:"createdAt"`
	CreatedBy      string        `json:"createdBy"` // UserID reference
}

// JournalLine is one debit or credit movement within a journal entry against
// one account. A well-formed line has a positive debit XOR a positive credit.
type JournalLine struct {
	JournalLineID  string `json:"journalLineID"`  // Primary key (UUID)
	JournalEntryID string `json:"journalEntryID"` // FK -> journal_entries
	AccountID      string `json:"accountID"`      // FK -> accounts
	DebitPence     int64  `json:"debitPence"`     // Non-negative
	CreditPence    int64  `json:"creditPence"`    // Non-negative
}

// CodedLine is a journal line addressed by symbolic account code rather than
// account id. Posting recipes produce coded lines; the poster resolves codes
// against the business's chart of accounts.
type CodedLine struct {
	AccountCode string `json:"accountCode"`
	DebitPence  int64  `json:"debitPence"`
	CreditPence int64  `json:"creditPence"`
}
