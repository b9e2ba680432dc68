package dto

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/utils"
)

// StatementLineResponse is one rendered statement line. Display carries the
// major-unit string so report pages do not redo pence arithmetic.
type StatementLineResponse struct {
	AccountCode  string `json:"accountCode"`
	Name         string `json:"name"`
	BalancePence int64  `json:"balancePence"`
	Display      string `json:"display"`
}

// IncomeStatementResponse is the income statement over a period.
type IncomeStatementResponse struct {
	FromDate           string `json:"fromDate"`
	ToDate             string `json:"toDate"`
	RevenuePence       int64  `json:"revenuePence"`
	COGSPence          int64  `json:"cogsPence"`
	OtherExpensesPence int64  `json:"otherExpensesPence"`
	GrossProfitPence   int64  `json:"grossProfitPence"`
	NetProfitPence     int64  `json:"netProfitPence"`
	NetProfitDisplay   string `json:"netProfitDisplay"`
}

// BalanceSheetResponse is the balance sheet as of a date.
type BalanceSheetResponse struct {
	AsOf                  string                  `json:"asOf"`
	Assets                []StatementLineResponse `json:"assets"`
	Liabilities           []StatementLineResponse `json:"liabilities"`
	Equity                []StatementLineResponse `json:"equity"`
	TotalAssetsPence      int64                   `json:"totalAssetsPence"`
	TotalLiabilitiesPence int64                   `json:"totalLiabilitiesPence"`
	TotalEquityPence      int64                   `json:"totalEquityPence"`
}

// CashflowResponse is the indirect-method cashflow over a period.
type CashflowResponse struct {
	FromDate             string `json:"fromDate"`
	ToDate               string `json:"toDate"`
	NetProfitPence       int64  `json:"netProfitPence"`
	ARChangePence        int64  `json:"arChangePence"`
	APChangePence        int64  `json:"apChangePence"`
	InventoryChangePence int64  `json:"inventoryChangePence"`
	NetCashFromOpsPence  int64  `json:"netCashFromOpsPence"`
	OpeningCapitalPence  int64  `json:"openingCapitalPence"`
	BeginningCashPence   int64  `json:"beginningCashPence"`
	EndingCashPence      int64  `json:"endingCashPence"`
	EndingCashDisplay    string `json:"endingCashDisplay"`
}

// ToStatementLineResponses converts domain statement lines to DTOs.
func ToStatementLineResponses(lines []domain.StatementLine) []StatementLineResponse {
	responses := make([]StatementLineResponse, len(lines))
	for i, l := range lines {
		responses[i] = StatementLineResponse{
			AccountCode:  l.AccountCode,
			Name:         l.Name,
			BalancePence: l.BalancePence,
			Display:      utils.FormatPence(l.BalancePence),
		}
	}
	return responses
}

// ToIncomeStatementResponse converts a domain income statement to its DTO.
func ToIncomeStatementResponse(stmt *domain.IncomeStatement, fromDate, toDate string) IncomeStatementResponse {
	return IncomeStatementResponse{
		FromDate:           fromDate,
		ToDate:             toDate,
		RevenuePence:       stmt.RevenuePence,
		COGSPence:          stmt.COGSPence,
		OtherExpensesPence: stmt.OtherExpensesPence,
		GrossProfitPence:   stmt.GrossProfitPence,
		NetProfitPence:     stmt.NetProfitPence,
		NetProfitDisplay:   utils.FormatPence(stmt.NetProfitPence),
	}
}

// ToBalanceSheetResponse converts a domain balance sheet to its DTO.
func ToBalanceSheetResponse(sheet *domain.BalanceSheet, asOf string) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:                  asOf,
		Assets:                ToStatementLineResponses(sheet.Assets),
		Liabilities:           ToStatementLineResponses(sheet.Liabilities),
		Equity:                ToStatementLineResponses(sheet.Equity),
		TotalAssetsPence:      sheet.TotalAssetsPence,
		TotalLiabilitiesPence: sheet.TotalLiabilitiesPence,
		TotalEquityPence:      sheet.TotalEquityPence,
	}
}

// ToCashflowResponse converts a domain cashflow statement to its DTO.
func ToCashflowResponse(stmt *domain.CashflowStatement, fromDate, toDate string) CashflowResponse {
	return CashflowResponse{
		FromDate:             fromDate,
		ToDate:               toDate,
		NetProfitPence:       stmt.NetProfitPence,
		ARChangePence:        stmt.ARChangePence,
		APChangePence:        stmt.APChangePence,
		InventoryChangePence: stmt.InventoryChangePence,
		NetCashFromOpsPence:  stmt.NetCashFromOpsPence,
		OpeningCapitalPence:  stmt.OpeningCapitalPence,
		BeginningCashPence:   stmt.BeginningCashPence,
		EndingCashPence:      stmt.EndingCashPence,
		EndingCashDisplay:    utils.FormatPence(stmt.EndingCashPence),
	}
}
