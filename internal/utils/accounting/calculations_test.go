package accounting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

func TestApplyBalance_SignConventions(t *testing.T) {
	testCases := []struct {
		name        string
		accountType domain.AccountType
		debit       int64
		credit      int64
		expected    int64
	}{
		{"asset debits increase", domain.Asset, 500, 0, 500},
		{"asset credits decrease", domain.Asset, 0, 300, -300},
		{"expense debits increase", domain.Expense, 700, 0, 700},
		{"liability credits increase", domain.Liability, 0, 400, 400},
		{"liability debits decrease", domain.Liability, 100, 0, -100},
		{"income credits increase", domain.Income, 0, 900, 900},
		{"equity credits increase", domain.Equity, 0, 250, 250},
		{"nets debit against credit", domain.Asset, 1000, 400, 600},
		{"zero rows are zero", domain.Income, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, accounting.ApplyBalance(tc.accountType, tc.debit, tc.credit))
		})
	}
}

func TestValidateEntryLines(t *testing.T) {
	valid := []domain.CodedLine{
		{AccountCode: domain.CodeCash, DebitPence: 1200},
		{AccountCode: domain.CodeSales, CreditPence: 1000},
		{AccountCode: domain.CodeVATPayable, CreditPence: 200},
	}
	assert.NoError(t, accounting.ValidateEntryLines(valid))

	testCases := []struct {
		name  string
		lines []domain.CodedLine
	}{
		{"too few lines", []domain.CodedLine{{AccountCode: domain.CodeCash, DebitPence: 100}}},
		{"unbalanced", []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: 100},
			{AccountCode: domain.CodeSales, CreditPence: 90},
		}},
		{"debit and credit on one line", []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: 100, CreditPence: 100},
			{AccountCode: domain.CodeSales, CreditPence: 0},
		}},
		{"neither side on a line", []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: 100},
			{AccountCode: domain.CodeSales},
		}},
		{"negative amount", []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: -100},
			{AccountCode: domain.CodeSales, CreditPence: -100},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := accounting.ValidateEntryLines(tc.lines)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestValidateEntryLines_UnbalancedSentinel(t *testing.T) {
	err := accounting.ValidateEntryLines([]domain.CodedLine{
		{AccountCode: domain.CodeCash, DebitPence: 100},
		{AccountCode: domain.CodeSales, CreditPence: 50},
	})
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedEntry)
}
