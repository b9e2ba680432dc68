package domain

import "time"

// PaymentMethod classifies how money moved for a document payment.
type PaymentMethod string

const (
	PayCash        PaymentMethod = "CASH"
	PayCard        PaymentMethod = "CARD"
	PayTransfer    PaymentMethod = "TRANSFER"
	PayMobileMoney PaymentMethod = "MOBILE_MONEY"
)

// Payment is one settled amount on a sale or purchase document.
type Payment struct {
	Method      PaymentMethod `json:"method"`
	AmountPence int64         `json:"amountPence"`
}

// SaleInvoice is the ledger-facing view of a finalized sale document. It
// carries exactly the stored amounts needed to reconstruct the posting
// recipe during repair; catalog lines, customer data and the rest of the
// sales CRUD surface live outside this core.
type SaleInvoice struct {
	SaleInvoiceID string    `json:"saleInvoiceID"`
	BusinessID    string    `json:"businessID"`
	SubtotalPence int64     `json:"subtotalPence"`
	VATPence      int64     `json:"vatPence"`
	TotalPence    int64     `json:"totalPence"`
	COGSPence     int64     `json:"cogsPence"` // Estimated cost of goods sold; 0 when unknown
	Payments      []Payment `json:"payments"`
	FinalizedAt   time.Time `json:"finalizedAt"`
}

// PurchaseInvoice is the ledger-facing view of a finalized purchase document.
type PurchaseInvoice struct {
	PurchaseInvoiceID string    `json:"purchaseInvoiceID"`
	BusinessID        string    `json:"businessID"`
	SubtotalPence     int64     `json:"subtotalPence"`
	VATPence          int64     `json:"vatPence"`
	TotalPence        int64     `json:"totalPence"`
	Payments          []Payment `json:"payments"`
	FinalizedAt       time.Time `json:"finalizedAt"`
}
