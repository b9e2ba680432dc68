package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/core/services"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountsByBusiness(ctx context.Context, businessID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, businessID string, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccountsIfMissing(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

// MockJournalRepository is a mock type for the JournalRepository interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByReference(ctx context.Context, businessID string, refType domain.ReferenceType, refID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, refType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, journalEntryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) FindOrphanedEntries(ctx context.Context, businessID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, journalEntryID string) error {
	args := m.Called(ctx, journalEntryID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.LedgerSvc
	businessID      string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewLedgerService(suite.mockAccountRepo, suite.mockJournalRepo, nil)
	suite.businessID = uuid.NewString()
}

// chartFor builds a resolved account map for the given codes.
func (suite *LedgerServiceTestSuite) chartFor(codes ...string) map[string]domain.Account {
	types := make(map[string]domain.AccountType, len(domain.StandardChart))
	for _, std := range domain.StandardChart {
		types[std.Code] = std.Type
	}
	accounts := make(map[string]domain.Account, len(codes))
	for _, code := range codes {
		accounts[code] = domain.Account{
			AccountID:   uuid.NewString(),
			BusinessID:  suite.businessID,
			Code:        code,
			AccountType: types[code],
		}
	}
	return accounts
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestPostJournalEntry_Success() {
	ctx := context.Background()
	accounts := suite.chartFor(domain.CodeCash, domain.CodeSales)

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	entryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entry, err := suite.service.PostJournalEntry(ctx, portssvc.PostJournalEntryInput{
		BusinessID:  suite.businessID,
		Description: "Cash sale",
		ReferenceType: domain.RefManual,
		EntryDate:   entryDate,
		Lines: []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: 5000},
			{AccountCode: domain.CodeSales, CreditPence: 5000},
		},
		CreatedBy: "user-1",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.JournalEntryID)
	suite.Equal(suite.businessID, entry.BusinessID)
	suite.True(entry.EntryDate.Equal(entryDate))

	savedLines := suite.mockJournalRepo.Calls[0].Arguments.Get(2).([]domain.JournalLine)
	suite.Require().Len(savedLines, 2)
	suite.Equal(accounts[domain.CodeCash].AccountID, savedLines[0].AccountID)
	suite.Equal(int64(5000), savedLines[0].DebitPence)
	suite.Equal(accounts[domain.CodeSales].AccountID, savedLines[1].AccountID)
	suite.Equal(int64(5000), savedLines[1].CreditPence)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostJournalEntry_UnbalancedRejectedBeforeAnyIO() {
	ctx := context.Background()

	_, err := suite.service.PostJournalEntry(ctx, portssvc.PostJournalEntryInput{
		BusinessID: suite.businessID,
		Lines: []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: 5000},
			{AccountCode: domain.CodeSales, CreditPence: 4000},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByCodes", mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostJournalEntry_UnknownAccountCode() {
	ctx := context.Background()
	accounts := suite.chartFor(domain.CodeCash)

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()

	_, err := suite.service.PostJournalEntry(ctx, portssvc.PostJournalEntryInput{
		BusinessID: suite.businessID,
		Lines: []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: 100},
			{AccountCode: "noSuchAccount", CreditPence: 100},
		},
	})

	suite.Require().Error(err)
	var unknown *apperrors.UnknownAccountCodeError
	suite.Require().ErrorAs(err, &unknown)
	suite.Equal("noSuchAccount", unknown.AccountCode)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostJournalEntry_ChartNotSeeded() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.AnythingOfType("[]string")).Return(map[string]domain.Account{}, nil).Once()

	_, err := suite.service.PostJournalEntry(ctx, portssvc.PostJournalEntryInput{
		BusinessID: suite.businessID,
		Lines: []domain.CodedLine{
			{AccountCode: domain.CodeCash, DebitPence: 100},
			{AccountCode: domain.CodeSales, CreditPence: 100},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrChartNotSeeded)
}

func (suite *LedgerServiceTestSuite) TestEnsureChartOfAccounts_SeedsOnlyMissing() {
	ctx := context.Background()
	existing := []domain.Account{
		{AccountID: uuid.NewString(), BusinessID: suite.businessID, Code: domain.CodeCash, AccountType: domain.Asset},
		{AccountID: uuid.NewString(), BusinessID: suite.businessID, Code: domain.CodeBank, AccountType: domain.Asset},
	}

	suite.mockAccountRepo.On("FindAccountsByBusiness", ctx, suite.businessID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("SaveAccountsIfMissing", ctx, mock.AnythingOfType("[]domain.Account")).Return(nil).Once()

	err := suite.service.EnsureChartOfAccounts(ctx, suite.businessID)

	suite.Require().NoError(err)
	saved := suite.mockAccountRepo.Calls[1].Arguments.Get(1).([]domain.Account)
	suite.Len(saved, len(domain.StandardChart)-2)
	for _, acc := range saved {
		suite.NotEqual(domain.CodeCash, acc.Code)
		suite.NotEqual(domain.CodeBank, acc.Code)
		suite.Equal(suite.businessID, acc.BusinessID)
		suite.NotEmpty(acc.AccountID)
	}
}

func (suite *LedgerServiceTestSuite) TestEnsureChartOfAccounts_NoopWhenComplete() {
	ctx := context.Background()
	existing := make([]domain.Account, 0, len(domain.StandardChart))
	for _, std := range domain.StandardChart {
		existing = append(existing, domain.Account{
			AccountID:   uuid.NewString(),
			BusinessID:  suite.businessID,
			Code:        std.Code,
			AccountType: std.Type,
		})
	}

	suite.mockAccountRepo.On("FindAccountsByBusiness", ctx, suite.businessID).Return(existing, nil).Once()

	err := suite.service.EnsureChartOfAccounts(ctx, suite.businessID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccountsIfMissing", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverseJournalEntry_MirrorsLinesAndKeepsReference() {
	ctx := context.Background()
	originalID := uuid.NewString()
	refID := "inv-42"
	original := &domain.JournalEntry{
		JournalEntryID: originalID,
		BusinessID:     suite.businessID,
		Description:    "Sale inv-42",
		ReferenceType:  domain.RefSalesInvoice,
		ReferenceID:    &refID,
	}
	cashAccount := uuid.NewString()
	salesAccount := uuid.NewString()
	originalLines := []domain.JournalLine{
		{JournalLineID: uuid.NewString(), JournalEntryID: originalID, AccountID: cashAccount, DebitPence: 5000},
		{JournalLineID: uuid.NewString(), JournalEntryID: originalID, AccountID: salesAccount, CreditPence: 5000},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, originalID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, originalID).Return(originalLines, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	reversal, err := suite.service.ReverseJournalEntry(ctx, suite.businessID, originalID, "user-1")

	suite.Require().NoError(err)
	suite.NotEqual(originalID, reversal.JournalEntryID)
	suite.Equal(domain.RefSalesInvoice, reversal.ReferenceType)
	suite.Require().NotNil(reversal.ReferenceID)
	suite.Equal(refID, *reversal.ReferenceID)

	savedLines := suite.mockJournalRepo.Calls[2].Arguments.Get(2).([]domain.JournalLine)
	suite.Require().Len(savedLines, 2)
	suite.Equal(cashAccount, savedLines[0].AccountID)
	suite.Equal(int64(5000), savedLines[0].CreditPence)
	suite.Equal(salesAccount, savedLines[1].AccountID)
	suite.Equal(int64(5000), savedLines[1].DebitPence)
}

func (suite *LedgerServiceTestSuite) TestReverseJournalEntry_WrongBusinessIsNotFound() {
	ctx := context.Background()
	originalID := uuid.NewString()
	original := &domain.JournalEntry{
		JournalEntryID: originalID,
		BusinessID:     uuid.NewString(), // someone else's entry
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, originalID).Return(original, nil).Once()

	_, err := suite.service.ReverseJournalEntry(ctx, suite.businessID, originalID, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
