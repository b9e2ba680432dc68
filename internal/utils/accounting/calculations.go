package accounting

import (
	"fmt"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// BalanceSign returns the sign convention for an account type: debits
// increase ASSET/EXPENSE balances, credits increase the rest.
func BalanceSign(accountType domain.AccountType) int64 {
	switch accountType {
	case domain.Asset, domain.Expense:
		return 1
	default:
		return -1
	}
}

// ApplyBalance converts raw debit/credit sums into the signed balance for an
// account of the given type.
func ApplyBalance(accountType domain.AccountType, debitPence, creditPence int64) int64 {
	return BalanceSign(accountType) * (debitPence - creditPence)
}

// SumLines totals the debit and credit sides of a set of coded lines.
func SumLines(lines []domain.CodedLine) (debitPence, creditPence int64) {
	for _, l := range lines {
		debitPence += l.DebitPence
		creditPence += l.CreditPence
	}
	return debitPence, creditPence
}

// ValidateEntryLines checks that a set of coded lines forms a well-formed,
// balanced journal entry: at least two lines, each line carrying a positive
// debit XOR a positive credit, and total debits equal to total credits.
func ValidateEntryLines(lines []domain.CodedLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}
	for i, l := range lines {
		if l.DebitPence < 0 || l.CreditPence < 0 {
			return fmt.Errorf("%w: line %d for account %q has a negative amount", apperrors.ErrValidation, i, l.AccountCode)
		}
		if (l.DebitPence > 0) == (l.CreditPence > 0) {
			return fmt.Errorf("%w: line %d for account %q must have a positive debit or a positive credit, not both or neither", apperrors.ErrValidation, i, l.AccountCode)
		}
	}
	debit, credit := SumLines(lines)
	if debit != credit {
		return fmt.Errorf("%w: debits %d != credits %d", apperrors.ErrUnbalancedEntry, debit, credit)
	}
	return nil
}
