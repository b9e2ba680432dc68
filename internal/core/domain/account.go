package domain

import "time"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account is one ledger account in a business's chart of accounts.
// Accounts are created once at business setup and are immutable afterwards;
// business logic refers to them by Code, never by AccountID.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary key (UUID)
	BusinessID  string      `json:"businessID"`  // FK -> businesses.business_id
	Code        string      `json:"code"`        // Stable symbolic code, unique per business
	Name        string      `json:"name"`        // Display name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	CreatedAt   time.Time   `json:"createdAt"`
}

// Symbolic account codes used by the posting recipes.
const (
	CodeCash          = "cash"
	CodeBank          = "bank"
	CodeMobileMoney   = "mobileMoney"
	CodeAR            = "ar"
	CodeInventory     = "inventory"
	CodeVATReceivable = "vatReceivable"
	CodeAP            = "ap"
	CodeVATPayable    = "vatPayable"
	CodeSales         = "sales"
	CodeCOGS          = "cogs"
	CodeOpex          = "opex"
)

// Synthetic equity line codes that appear on the balance sheet without a
// backing account row.
const (
	CodeOwnerCapital  = "OWNER_CAPITAL"
	CodeCurrentProfit = "CURRENT_PROFIT"
)

// ChartAccount describes one entry of the standard chart of accounts.
type ChartAccount struct {
	Code string
	Name string
	Type AccountType
}

// StandardChart lists the accounts seeded for every business. The order is
// stable so seeding and statement line items render deterministically.
var StandardChart = []ChartAccount{
	{CodeCash, "Cash on Hand", Asset},
	{CodeBank, "Bank", Asset},
	{CodeMobileMoney, "Mobile Money", Asset},
	{CodeAR, "Accounts Receivable", Asset},
	{CodeInventory, "Inventory", Asset},
	{CodeVATReceivable, "VAT Receivable", Asset},
	{CodeAP, "Accounts Payable", Liability},
	{CodeVATPayable, "VAT Payable", Liability},
	{CodeSales, "Sales Revenue", Income},
	{CodeCOGS, "Cost of Goods Sold", Expense},
	{CodeOpex, "Operating Expenses", Expense},
}
