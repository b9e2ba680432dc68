package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// ValidReferenceType is the "reference_type" binding rule: the field must be
// one of the known journal reference types.
func ValidReferenceType(fl validator.FieldLevel) bool {
	switch domain.ReferenceType(fl.Field().String()) {
	case domain.RefSalesInvoice, domain.RefPurchaseInvoice, domain.RefExpense, domain.RefManual:
		return true
	default:
		return false
	}
}
