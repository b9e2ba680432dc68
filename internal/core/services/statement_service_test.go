package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/core/services"
	"github.com/shopledger/shop_ledger_app/internal/platform/cache"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GroupedBalancesAsOf(ctx context.Context, businessID string, asOf time.Time) ([]domain.BalanceRow, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GroupedBalancesForPeriod(ctx context.Context, businessID string, from, to time.Time) ([]domain.BalanceRow, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceRow), args.Error(1)
}

// MockBusinessRepository is a mock type for the BusinessRepository interface
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

// --- Test Suite Setup ---

type StatementServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockBusinessRepo  *MockBusinessRepository
	service           portssvc.StatementSvc
	businessID        string
	from              time.Time
	to                time.Time
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.service = services.NewStatementService(suite.mockReportingRepo, suite.mockBusinessRepo, nil)
	suite.businessID = uuid.NewString()
	suite.from = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
}

func (suite *StatementServiceTestSuite) business(openingCapitalPence int64) *domain.Business {
	return &domain.Business{BusinessID: suite.businessID, Name: "Corner Shop", OpeningCapitalPence: openingCapitalPence}
}

func row(code string, accType domain.AccountType, debit, credit int64) domain.BalanceRow {
	return domain.BalanceRow{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        code,
		AccountType: accType,
		DebitPence:  debit,
		CreditPence: credit,
	}
}

// --- Test Cases ---

func (suite *StatementServiceTestSuite) TestIncomeStatement_BreaksOutCOGS() {
	ctx := context.Background()
	rows := []domain.BalanceRow{
		row(domain.CodeSales, domain.Income, 0, 10000),
		row(domain.CodeCOGS, domain.Expense, 6000, 0),
		row(domain.CodeOpex, domain.Expense, 1000, 0),
	}
	suite.mockReportingRepo.On("GroupedBalancesForPeriod", ctx, suite.businessID, suite.from, suite.to).Return(rows, nil).Once()

	stmt, err := suite.service.IncomeStatement(ctx, suite.businessID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(int64(10000), stmt.RevenuePence)
	suite.Equal(int64(6000), stmt.COGSPence)
	suite.Equal(int64(1000), stmt.OtherExpensesPence)
	suite.Equal(int64(4000), stmt.GrossProfitPence)
	suite.Equal(int64(3000), stmt.NetProfitPence)
}

func (suite *StatementServiceTestSuite) TestIncomeStatement_EmptyLedgerIsAllZeros() {
	ctx := context.Background()
	suite.mockReportingRepo.On("GroupedBalancesForPeriod", ctx, suite.businessID, suite.from, suite.to).Return([]domain.BalanceRow{}, nil).Once()

	stmt, err := suite.service.IncomeStatement(ctx, suite.businessID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(&domain.IncomeStatement{}, stmt)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_EmptyLedgerNoOpeningCapital() {
	ctx := context.Background()
	asOf := suite.to

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, suite.businessID).Return(suite.business(0), nil).Once()
	suite.mockReportingRepo.On("GroupedBalancesAsOf", ctx, suite.businessID, asOf).Return([]domain.BalanceRow{}, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, suite.businessID, asOf)

	suite.Require().NoError(err)
	suite.Empty(sheet.Assets)
	suite.Empty(sheet.Liabilities)
	suite.Empty(sheet.Equity, "no synthetic lines on an empty ledger")
	suite.Zero(sheet.TotalAssetsPence)
	suite.Zero(sheet.TotalLiabilitiesPence)
	suite.Zero(sheet.TotalEquityPence)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_OpeningCapitalFoldsIntoCashAndEquity() {
	ctx := context.Background()
	asOf := suite.to

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, suite.businessID).Return(suite.business(100000), nil).Once()
	suite.mockReportingRepo.On("GroupedBalancesAsOf", ctx, suite.businessID, asOf).Return([]domain.BalanceRow{}, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, suite.businessID, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(sheet.Assets, 1)
	suite.Equal(domain.CodeCash, sheet.Assets[0].AccountCode)
	suite.Equal(int64(100000), sheet.Assets[0].BalancePence)
	suite.Require().Len(sheet.Equity, 1)
	suite.Equal(domain.CodeOwnerCapital, sheet.Equity[0].AccountCode)
	suite.Equal(int64(100000), sheet.Equity[0].BalancePence)
	suite.Equal(sheet.TotalAssetsPence, sheet.TotalLiabilitiesPence+sheet.TotalEquityPence)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_EquationHoldsWithActivity() {
	ctx := context.Background()
	asOf := suite.to

	// A part-paid sale of 12000 (10000 + 2000 VAT) with 6000 of cost moved
	// out of inventory, on top of 100000 opening capital.
	rows := []domain.BalanceRow{
		row(domain.CodeCash, domain.Asset, 5000, 0),
		row(domain.CodeAR, domain.Asset, 7000, 0),
		row(domain.CodeInventory, domain.Asset, 0, 6000),
		row(domain.CodeVATPayable, domain.Liability, 0, 2000),
		row(domain.CodeSales, domain.Income, 0, 10000),
		row(domain.CodeCOGS, domain.Expense, 6000, 0),
	}
	suite.mockBusinessRepo.On("FindBusinessByID", ctx, suite.businessID).Return(suite.business(100000), nil).Once()
	suite.mockReportingRepo.On("GroupedBalancesAsOf", ctx, suite.businessID, asOf).Return(rows, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, suite.businessID, asOf)

	suite.Require().NoError(err)

	assets := map[string]int64{}
	for _, l := range sheet.Assets {
		assets[l.AccountCode] = l.BalancePence
	}
	suite.Equal(int64(105000), assets[domain.CodeCash], "opening capital folded into cash")
	suite.Equal(int64(7000), assets[domain.CodeAR])
	suite.Equal(int64(-6000), assets[domain.CodeInventory])

	equity := map[string]int64{}
	for _, l := range sheet.Equity {
		equity[l.AccountCode] = l.BalancePence
	}
	suite.Equal(int64(100000), equity[domain.CodeOwnerCapital])
	suite.Equal(int64(4000), equity[domain.CodeCurrentProfit], "income net of expenses over all time")

	suite.Equal(int64(106000), sheet.TotalAssetsPence)
	suite.Equal(int64(2000), sheet.TotalLiabilitiesPence)
	suite.Equal(int64(104000), sheet.TotalEquityPence)
	suite.Equal(sheet.TotalAssetsPence, sheet.TotalLiabilitiesPence+sheet.TotalEquityPence)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_UsesExactAsOfDate() {
	ctx := context.Background()
	asOf := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, suite.businessID).Return(suite.business(0), nil).Once()
	suite.mockReportingRepo.On("GroupedBalancesAsOf", ctx, suite.businessID, asOf).Return([]domain.BalanceRow{}, nil).Once()

	_, err := suite.service.BalanceSheet(ctx, suite.businessID, asOf)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestCashflow_IndirectMethodArithmetic() {
	ctx := context.Background()

	periodRows := []domain.BalanceRow{
		row(domain.CodeSales, domain.Income, 0, 10000),
		row(domain.CodeCOGS, domain.Expense, 6000, 0),
	}
	startRows := []domain.BalanceRow{
		row(domain.CodeCash, domain.Asset, 3000, 0),
		row(domain.CodeAR, domain.Asset, 1000, 0),
		row(domain.CodeInventory, domain.Asset, 9000, 0),
	}
	endRows := []domain.BalanceRow{
		row(domain.CodeCash, domain.Asset, 8000, 0),
		row(domain.CodeAR, domain.Asset, 3000, 0),
		row(domain.CodeInventory, domain.Asset, 9000, 6000),
		row(domain.CodeAP, domain.Liability, 0, 500),
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, suite.businessID).Return(suite.business(100000), nil).Once()
	suite.mockReportingRepo.On("GroupedBalancesForPeriod", ctx, suite.businessID, suite.from, suite.to).Return(periodRows, nil).Once()
	suite.mockReportingRepo.On("GroupedBalancesAsOf", ctx, suite.businessID, suite.from).Return(startRows, nil).Once()
	suite.mockReportingRepo.On("GroupedBalancesAsOf", ctx, suite.businessID, suite.to).Return(endRows, nil).Once()

	stmt, err := suite.service.Cashflow(ctx, suite.businessID, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(int64(4000), stmt.NetProfitPence)
	suite.Equal(int64(2000), stmt.ARChangePence)
	suite.Equal(int64(-6000), stmt.InventoryChangePence)
	suite.Equal(int64(500), stmt.APChangePence)
	// netProfit - deltaAR - deltaInventory + deltaAP
	suite.Equal(int64(8500), stmt.NetCashFromOpsPence)
	suite.Equal(int64(103000), stmt.BeginningCashPence, "treasury at start plus opening capital")
	suite.Equal(int64(111500), stmt.EndingCashPence)
}

func (suite *StatementServiceTestSuite) TestStatements_CachedUntilInvalidated() {
	ctx := context.Background()
	statementCache := cache.New(16, time.Minute)
	cachedService := services.NewStatementService(suite.mockReportingRepo, suite.mockBusinessRepo, statementCache)

	rows := []domain.BalanceRow{row(domain.CodeSales, domain.Income, 0, 10000)}
	suite.mockReportingRepo.On("GroupedBalancesForPeriod", ctx, suite.businessID, suite.from, suite.to).Return(rows, nil).Twice()

	first, err := cachedService.IncomeStatement(ctx, suite.businessID, suite.from, suite.to)
	suite.Require().NoError(err)
	second, err := cachedService.IncomeStatement(ctx, suite.businessID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.Same(first, second, "second read served from cache")
	suite.mockReportingRepo.AssertNumberOfCalls(suite.T(), "GroupedBalancesForPeriod", 1)

	statementCache.Invalidate(suite.businessID)

	third, err := cachedService.IncomeStatement(ctx, suite.businessID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.NotSame(first, third, "invalidation forces a rederive")
	suite.mockReportingRepo.AssertNumberOfCalls(suite.T(), "GroupedBalancesForPeriod", 2)
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
