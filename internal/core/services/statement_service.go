package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/metrics"
	"github.com/shopledger/shop_ledger_app/internal/platform/cache"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

const (
	kindIncomeStatement = "income-statement"
	kindBalanceSheet    = "balance-sheet"
	kindCashflow        = "cashflow"

	dateOnly = "2006-01-02"
)

// statementService derives the income statement, balance sheet and cashflow
// views from journal lines on demand. Balances are never stored; every figure
// is recomputed from the lines (through the read-through cache), which is
// what keeps the three views mutually consistent.
type statementService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	businessRepo  portsrepo.BusinessRepository
	cache         *cache.StatementCache
}

// NewStatementService creates the statement builder. The cache may be nil.
func NewStatementService(reportingRepo portsrepo.ReportingRepository, businessRepo portsrepo.BusinessRepository, statementCache *cache.StatementCache) portssvc.StatementSvc {
	return &statementService{
		reportingRepo: reportingRepo,
		businessRepo:  businessRepo,
		cache:         statementCache,
	}
}

var _ portssvc.StatementSvc = (*statementService)(nil)

// IncomeStatement derives revenue, COGS and other expenses over [from, to].
func (s *statementService) IncomeStatement(ctx context.Context, businessID string, from, to time.Time) (*domain.IncomeStatement, error) {
	params := from.Format(dateOnly) + ":" + to.Format(dateOnly)
	if cached, ok := s.cached(kindIncomeStatement, businessID, params); ok {
		return cached.(*domain.IncomeStatement), nil
	}
	timer := prometheus.NewTimer(metrics.StatementLatency.WithLabelValues(kindIncomeStatement))
	defer timer.ObserveDuration()

	rows, err := s.reportingRepo.GroupedBalancesForPeriod(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to derive period balances: %w", err)
	}

	stmt := buildIncomeStatement(rows)
	s.store(kindIncomeStatement, businessID, params, stmt)
	s.LogInfo(ctx, "Income statement derived",
		slog.String("business_id", businessID),
		slog.Int64("net_profit_pence", stmt.NetProfitPence))
	return stmt, nil
}

// BalanceSheet derives the statement of financial position as of a date,
// folding the business's opening capital into the cash line and a synthetic
// owner's-capital equity line, and netting all income against all expenses
// up to asOf into a synthetic current-profit equity line.
func (s *statementService) BalanceSheet(ctx context.Context, businessID string, asOf time.Time) (*domain.BalanceSheet, error) {
	params := asOf.Format(dateOnly)
	if cached, ok := s.cached(kindBalanceSheet, businessID, params); ok {
		return cached.(*domain.BalanceSheet), nil
	}
	timer := prometheus.NewTimer(metrics.StatementLatency.WithLabelValues(kindBalanceSheet))
	defer timer.ObserveDuration()

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business %s: %w", businessID, err)
	}

	rows, err := s.reportingRepo.GroupedBalancesAsOf(ctx, businessID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to derive balances as of %s: %w", params, err)
	}

	sheet := buildBalanceSheet(rows, business.OpeningCapitalPence)
	s.store(kindBalanceSheet, businessID, params, sheet)
	s.LogInfo(ctx, "Balance sheet derived",
		slog.String("business_id", businessID),
		slog.String("as_of", params),
		slog.Int64("total_assets_pence", sheet.TotalAssetsPence))
	return sheet, nil
}

// Cashflow derives the indirect-method cashflow over [from, to]: net profit
// adjusted for the working-capital movements of AR, inventory and AP.
func (s *statementService) Cashflow(ctx context.Context, businessID string, from, to time.Time) (*domain.CashflowStatement, error) {
	params := from.Format(dateOnly) + ":" + to.Format(dateOnly)
	if cached, ok := s.cached(kindCashflow, businessID, params); ok {
		return cached.(*domain.CashflowStatement), nil
	}
	timer := prometheus.NewTimer(metrics.StatementLatency.WithLabelValues(kindCashflow))
	defer timer.ObserveDuration()

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business %s: %w", businessID, err)
	}

	periodRows, err := s.reportingRepo.GroupedBalancesForPeriod(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to derive period balances: %w", err)
	}
	startRows, err := s.reportingRepo.GroupedBalancesAsOf(ctx, businessID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to derive opening balances: %w", err)
	}
	endRows, err := s.reportingRepo.GroupedBalancesAsOf(ctx, businessID, to)
	if err != nil {
		return nil, fmt.Errorf("failed to derive closing balances: %w", err)
	}

	stmt := buildCashflow(periodRows, startRows, endRows, business.OpeningCapitalPence)
	s.store(kindCashflow, businessID, params, stmt)
	s.LogInfo(ctx, "Cashflow statement derived",
		slog.String("business_id", businessID),
		slog.Int64("net_cash_from_ops_pence", stmt.NetCashFromOpsPence))
	return stmt, nil
}

func (s *statementService) cached(kind, businessID, params string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	value, ok := s.cache.Get(businessID, kind, params)
	if ok {
		metrics.StatementCacheHits.WithLabelValues(kind).Inc()
	} else {
		metrics.StatementCacheMisses.WithLabelValues(kind).Inc()
	}
	return value, ok
}

func (s *statementService) store(kind, businessID, params string, value any) {
	if s.cache != nil {
		s.cache.Set(businessID, kind, params, value)
	}
}

// buildIncomeStatement folds signed period balances into the income
// statement figures. COGS is broken out of the expense total by its
// designated account code.
func buildIncomeStatement(rows []domain.BalanceRow) *domain.IncomeStatement {
	stmt := &domain.IncomeStatement{}
	for _, row := range rows {
		balance := accounting.ApplyBalance(row.AccountType, row.DebitPence, row.CreditPence)
		switch {
		case row.AccountType == domain.Income:
			stmt.RevenuePence += balance
		case row.Code == domain.CodeCOGS:
			stmt.COGSPence += balance
		case row.AccountType == domain.Expense:
			stmt.OtherExpensesPence += balance
		}
	}
	stmt.GrossProfitPence = stmt.RevenuePence - stmt.COGSPence
	stmt.NetProfitPence = stmt.GrossProfitPence - stmt.OtherExpensesPence
	return stmt
}

// buildBalanceSheet groups signed point-in-time balances into the three
// sections and adds the synthetic adjustments. The fold of opening capital
// into both the cash line and the owner's-capital line is what keeps the
// accounting equation intact: totalAssets == totalLiabilities + totalEquity.
func buildBalanceSheet(rows []domain.BalanceRow, openingCapitalPence int64) *domain.BalanceSheet {
	sheet := &domain.BalanceSheet{
		Assets:      []domain.StatementLine{},
		Liabilities: []domain.StatementLine{},
		Equity:      []domain.StatementLine{},
	}

	var incomeTotal, expenseTotal int64
	cashIdx := -1
	for _, row := range rows {
		balance := accounting.ApplyBalance(row.AccountType, row.DebitPence, row.CreditPence)
		line := domain.StatementLine{
			AccountID:    row.AccountID,
			AccountCode:  row.Code,
			Name:         row.Name,
			BalancePence: balance,
		}
		switch row.AccountType {
		case domain.Asset:
			if row.Code == domain.CodeCash {
				cashIdx = len(sheet.Assets)
			}
			sheet.Assets = append(sheet.Assets, line)
		case domain.Liability:
			sheet.Liabilities = append(sheet.Liabilities, line)
		case domain.Equity:
			sheet.Equity = append(sheet.Equity, line)
		case domain.Income:
			incomeTotal += balance
		case domain.Expense:
			expenseTotal += balance
		}
	}

	if openingCapitalPence != 0 {
		if cashIdx >= 0 {
			sheet.Assets[cashIdx].BalancePence += openingCapitalPence
		} else {
			// A business with opening capital but no cash movements yet still
			// shows the injected cash.
			sheet.Assets = append(sheet.Assets, domain.StatementLine{
				AccountCode:  domain.CodeCash,
				Name:         "Cash on Hand",
				BalancePence: openingCapitalPence,
			})
		}
		sheet.Equity = append(sheet.Equity, domain.StatementLine{
			AccountCode:  domain.CodeOwnerCapital,
			Name:         "Owner's Capital",
			BalancePence: openingCapitalPence,
		})
	}

	// Net income over all time up to asOf; there is no period-closing step,
	// so retained earnings never move out of this line.
	if currentProfit := incomeTotal - expenseTotal; currentProfit != 0 {
		sheet.Equity = append(sheet.Equity, domain.StatementLine{
			AccountCode:  domain.CodeCurrentProfit,
			Name:         "Current Profit",
			BalancePence: currentProfit,
		})
	}

	sortLines(sheet.Assets)
	sortLines(sheet.Liabilities)

	for _, l := range sheet.Assets {
		sheet.TotalAssetsPence += l.BalancePence
	}
	for _, l := range sheet.Liabilities {
		sheet.TotalLiabilitiesPence += l.BalancePence
	}
	for _, l := range sheet.Equity {
		sheet.TotalEquityPence += l.BalancePence
	}
	return sheet
}

// buildCashflow assembles the indirect-method figures. "Cash" here is the
// sum of the treasury accounts, so the figure tracks the money position
// regardless of the payment-method mix.
func buildCashflow(periodRows, startRows, endRows []domain.BalanceRow, openingCapitalPence int64) *domain.CashflowStatement {
	income := buildIncomeStatement(periodRows)

	start := balancesByCode(startRows)
	end := balancesByCode(endRows)

	stmt := &domain.CashflowStatement{
		NetProfitPence:       income.NetProfitPence,
		ARChangePence:        end[domain.CodeAR] - start[domain.CodeAR],
		APChangePence:        end[domain.CodeAP] - start[domain.CodeAP],
		InventoryChangePence: end[domain.CodeInventory] - start[domain.CodeInventory],
		OpeningCapitalPence:  openingCapitalPence,
	}
	stmt.NetCashFromOpsPence = stmt.NetProfitPence - stmt.ARChangePence - stmt.InventoryChangePence + stmt.APChangePence

	beginningCash := start[domain.CodeCash] + start[domain.CodeBank] + start[domain.CodeMobileMoney]
	stmt.BeginningCashPence = beginningCash + openingCapitalPence
	stmt.EndingCashPence = stmt.BeginningCashPence + stmt.NetCashFromOpsPence
	return stmt
}

func balancesByCode(rows []domain.BalanceRow) map[string]int64 {
	balances := make(map[string]int64, len(rows))
	for _, row := range rows {
		balances[row.Code] += accounting.ApplyBalance(row.AccountType, row.DebitPence, row.CreditPence)
	}
	return balances
}

func sortLines(lines []domain.StatementLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].AccountCode < lines[j].AccountCode
	})
}
