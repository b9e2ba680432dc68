package domain

// AccountBalance is one account with its signed derived balance, as produced
// by the balance deriver. The sign follows the account-type convention:
// positive means "normal balance" for that type (a positive LIABILITY balance
// is money owed, not money held).
type AccountBalance struct {
	AccountID    string      `json:"accountID"`
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	BalancePence int64       `json:"balancePence"`
}

// BalanceRow is the raw per-account aggregate the reporting repository
// returns: unsigned debit and credit sums grouped by account. The balance
// deriver applies the sign convention on top.
type BalanceRow struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	DebitPence  int64       `json:"debitPence"`
	CreditPence int64       `json:"creditPence"`
}

// StatementLine is one line item on a rendered statement. Synthetic lines
// (OWNER_CAPITAL, CURRENT_PROFIT) have no AccountID.
type StatementLine struct {
	AccountID    string `json:"accountID,omitempty"`
	AccountCode  string `json:"accountCode"`
	Name         string `json:"name"`
	BalancePence int64  `json:"balancePence"`
}

// IncomeStatement summarizes trading performance over a period.
type IncomeStatement struct {
	RevenuePence       int64 `json:"revenuePence"`
	COGSPence          int64 `json:"cogsPence"`
	OtherExpensesPence int64 `json:"otherExpensesPence"`
	GrossProfitPence   int64 `json:"grossProfitPence"`
	NetProfitPence     int64 `json:"netProfitPence"`
}

// BalanceSheet is the point-in-time statement of financial position.
// TotalAssets == TotalLiabilities + TotalEquity holds for every well-formed
// ledger state; statement_service tests pin that invariant.
type BalanceSheet struct {
	Assets                []StatementLine `json:"assets"`
	Liabilities           []StatementLine `json:"liabilities"`
	Equity                []StatementLine `json:"equity"`
	TotalAssetsPence      int64           `json:"totalAssetsPence"`
	TotalLiabilitiesPence int64           `json:"totalLiabilitiesPence"`
	TotalEquityPence      int64           `json:"totalEquityPence"`
}

// CashflowStatement is the indirect-method cashflow view over a period.
type CashflowStatement struct {
	NetProfitPence       int64 `json:"netProfitPence"`
	ARChangePence        int64 `json:"arChangePence"`
	APChangePence        int64 `json:"apChangePence"`
	InventoryChangePence int64 `json:"inventoryChangePence"`
	NetCashFromOpsPence  int64 `json:"netCashFromOpsPence"`
	OpeningCapitalPence  int64 `json:"openingCapitalPence"`
	BeginningCashPence   int64 `json:"beginningCashPence"`
	EndingCashPence      int64 `json:"endingCashPence"`
}

// RepairResult reports the outcome of a backfill run.
type RepairResult struct {
	Repaired int `json:"repaired"`
}

// CleanupResult reports the outcome of an orphan-cleanup run.
type CleanupResult struct {
	Cleaned int `json:"cleaned"`
}
