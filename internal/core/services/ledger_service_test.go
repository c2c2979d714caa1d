package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/core/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

// Ensure MockLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveEntries(ctx context.Context, entries []domain.Transaction, balanceChanges map[string]decimal.Decimal) ([]domain.Transaction, error) {
	args := m.Called(ctx, entries, balanceChanges)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) UpdateTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus, updatedAt time.Time) error {
	args := m.Called(ctx, transactionID, status, updatedAt)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByAccount(ctx context.Context, accountNumber string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountNumber, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionHistoryEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionHistoryEntry), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountNumbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) CloseAccount(ctx context.Context, accountNumber string, now time.Time) error {
	args := m.Called(ctx, accountNumber, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByNumbersForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountNumbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade
	activeAccount   domain.Account
	overdraftAcct   domain.Account
	closedAccount   domain.Account
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockAccountRepo)

	now := time.Now().UTC()
	suite.activeAccount = domain.Account{
		AccountNumber:  "ACC1001",
		CustomerID:     "CUST001",
		AccountType:    domain.Savings,
		Balance:        decimal.NewFromInt(500),
		OverdraftLimit: decimal.Zero,
		Status:         domain.AccountActive,
		OpenDate:       now,
		LastUpdatedAt:  now,
	}
	suite.overdraftAcct = domain.Account{
		AccountNumber:  "ACC2001",
		CustomerID:     "CUST002",
		AccountType:    domain.Current,
		Balance:        decimal.NewFromInt(50),
		OverdraftLimit: decimal.NewFromInt(100),
		Status:         domain.AccountActive,
		OpenDate:       now,
		LastUpdatedAt:  now,
	}
	suite.closedAccount = domain.Account{
		AccountNumber:  "ACC3001",
		CustomerID:     "CUST003",
		AccountType:    domain.Savings,
		Balance:        decimal.NewFromInt(10),
		OverdraftLimit: decimal.Zero,
		Status:         domain.AccountClosed,
		OpenDate:       now,
		LastUpdatedAt:  now,
	}
}

// echoEntries builds a SaveEntries return value that mirrors the submitted
// entries with surrogate ids assigned, the way the repository does.
func echoEntries(entries []domain.Transaction) []domain.Transaction {
	saved := make([]domain.Transaction, len(entries))
	copy(saved, entries)
	for i := range saved {
		saved[i].TransactionID = int64(i + 1)
	}
	return saved
}

// --- Apply (deposit / withdrawal) ---

func (suite *LedgerServiceTestSuite) TestApply_DepositSuccess() {
	ctx := context.Background()
	amount := decimal.NewFromFloat(150.25)

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, suite.activeAccount.AccountNumber).Return(&suite.activeAccount, nil).Once()
	suite.mockLedgerRepo.On("SaveEntries", ctx,
		mock.MatchedBy(func(entries []domain.Transaction) bool {
			return len(entries) == 1 &&
				entries[0].AccountNumber == suite.activeAccount.AccountNumber &&
				entries[0].TransactionType == domain.Deposit &&
				entries[0].Amount.Equal(amount) &&
				entries[0].Status == domain.Completed &&
				entries[0].ReferenceNumber != ""
		}),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 1 && changes[suite.activeAccount.AccountNumber].Equal(amount)
		}),
	).Return(echoEntries([]domain.Transaction{{AccountNumber: suite.activeAccount.AccountNumber, TransactionType: domain.Deposit, Amount: amount, Status: domain.Completed, ReferenceNumber: "ref-1"}}), nil).Once()

	entry, err := suite.service.Apply(ctx, suite.activeAccount.AccountNumber, domain.Deposit, amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(1), entry.TransactionID)
	suite.Equal(domain.Completed, entry.Status)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApply_WithdrawalInsufficientFunds() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, suite.activeAccount.AccountNumber).Return(&suite.activeAccount, nil).Once()

	entry, err := suite.service.Apply(ctx, suite.activeAccount.AccountNumber, domain.Withdrawal, decimal.NewFromInt(501))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(entry)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApply_WithdrawalIntoOverdraft() {
	ctx := context.Background()
	// Balance 50, overdraft limit 100: a 100 withdrawal lands at -50, above the floor.
	amount := decimal.NewFromInt(100)

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, suite.overdraftAcct.AccountNumber).Return(&suite.overdraftAcct, nil).Once()
	suite.mockLedgerRepo.On("SaveEntries", ctx, mock.AnythingOfType("[]domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return changes[suite.overdraftAcct.AccountNumber].Equal(amount.Neg())
		}),
	).Return(echoEntries([]domain.Transaction{{AccountNumber: suite.overdraftAcct.AccountNumber, TransactionType: domain.Withdrawal, Amount: amount, Status: domain.Completed}}), nil).Once()

	entry, err := suite.service.Apply(ctx, suite.overdraftAcct.AccountNumber, domain.Withdrawal, amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApply_WithdrawalBreachesOverdraftFloor() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, suite.overdraftAcct.AccountNumber).Return(&suite.overdraftAcct, nil).Once()

	_, err := suite.service.Apply(ctx, suite.overdraftAcct.AccountNumber, domain.Withdrawal, decimal.NewFromInt(151))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (suite *LedgerServiceTestSuite) TestApply_ClosedAccount() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, suite.closedAccount.AccountNumber).Return(&suite.closedAccount, nil).Once()

	_, err := suite.service.Apply(ctx, suite.closedAccount.AccountNumber, domain.Deposit, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountClosed)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApply_AccountNotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "ACC9999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Apply(ctx, "ACC9999", domain.Deposit, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestApply_InvalidAmounts() {
	ctx := context.Background()

	cases := map[string]decimal.Decimal{
		"zero":              decimal.Zero,
		"negative":          decimal.NewFromInt(-5),
		"too many decimals": decimal.NewFromFloat(10.001),
		"exceeds the cap":   decimal.NewFromInt(1_000_000_001),
	}
	for name, amount := range cases {
		_, err := suite.service.Apply(ctx, suite.activeAccount.AccountNumber, domain.Withdrawal, amount)
		suite.Require().Error(err, name)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount, name)
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByNumber", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestApply_RejectsTransferType() {
	ctx := context.Background()

	_, err := suite.service.Apply(ctx, suite.activeAccount.AccountNumber, domain.Transfer, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnknownTransactionType)
}

// --- Transfer ---

func (suite *LedgerServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(200)
	source := suite.activeAccount
	dest := suite.overdraftAcct

	suite.mockAccountRepo.On("FindAccountsByNumbers", ctx, []string{source.AccountNumber, dest.AccountNumber}).Return(map[string]domain.Account{
		source.AccountNumber: source,
		dest.AccountNumber:   dest,
	}, nil).Once()

	var capturedEntries []domain.Transaction
	suite.mockLedgerRepo.On("SaveEntries", ctx,
		mock.MatchedBy(func(entries []domain.Transaction) bool {
			capturedEntries = entries
			return len(entries) == 2 &&
				entries[0].AccountNumber == source.AccountNumber &&
				entries[1].AccountNumber == dest.AccountNumber &&
				entries[0].TransactionType == domain.Transfer &&
				entries[1].TransactionType == domain.Transfer
		}),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return changes[source.AccountNumber].Equal(amount.Neg()) &&
				changes[dest.AccountNumber].Equal(amount)
		}),
	).Return(echoEntries([]domain.Transaction{{AccountNumber: source.AccountNumber}, {AccountNumber: dest.AccountNumber}}), nil).Once()

	debitRef, err := suite.service.Transfer(ctx, source.AccountNumber, dest.AccountNumber, amount)

	suite.Require().NoError(err)
	suite.NotEmpty(debitRef)
	suite.Require().Len(capturedEntries, 2)
	// Legs carry distinct references and an identical timestamp; the debit
	// leg's reference is the receipt.
	suite.Equal(capturedEntries[0].ReferenceNumber, debitRef)
	suite.NotEqual(capturedEntries[0].ReferenceNumber, capturedEntries[1].ReferenceNumber)
	suite.True(capturedEntries[0].Timestamp.Equal(capturedEntries[1].Timestamp))

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransfer_SameAccount() {
	ctx := context.Background()

	_, err := suite.service.Transfer(ctx, "ACC1001", "ACC1001", decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSameAccount)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByNumbers", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransfer_SourceInsufficientFunds() {
	ctx := context.Background()
	source := suite.activeAccount
	dest := suite.overdraftAcct

	suite.mockAccountRepo.On("FindAccountsByNumbers", ctx, []string{source.AccountNumber, dest.AccountNumber}).Return(map[string]domain.Account{
		source.AccountNumber: source,
		dest.AccountNumber:   dest,
	}, nil).Once()

	_, err := suite.service.Transfer(ctx, source.AccountNumber, dest.AccountNumber, decimal.NewFromInt(501))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransfer_DestinationNotFound() {
	ctx := context.Background()
	source := suite.activeAccount

	suite.mockAccountRepo.On("FindAccountsByNumbers", ctx, []string{source.AccountNumber, "ACC9999"}).Return(map[string]domain.Account{
		source.AccountNumber: source,
	}, nil).Once()

	_, err := suite.service.Transfer(ctx, source.AccountNumber, "ACC9999", decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestTransfer_ClosedDestination() {
	ctx := context.Background()
	source := suite.activeAccount
	dest := suite.closedAccount

	suite.mockAccountRepo.On("FindAccountsByNumbers", ctx, []string{source.AccountNumber, dest.AccountNumber}).Return(map[string]domain.Account{
		source.AccountNumber: source,
		dest.AccountNumber:   dest,
	}, nil).Once()

	_, err := suite.service.Transfer(ctx, source.AccountNumber, dest.AccountNumber, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountClosed)
}

func (suite *LedgerServiceTestSuite) TestTransfer_RepoConflictPropagates() {
	ctx := context.Background()
	source := suite.activeAccount
	dest := suite.overdraftAcct

	suite.mockAccountRepo.On("FindAccountsByNumbers", ctx, []string{source.AccountNumber, dest.AccountNumber}).Return(map[string]domain.Account{
		source.AccountNumber: source,
		dest.AccountNumber:   dest,
	}, nil).Once()
	suite.mockLedgerRepo.On("SaveEntries", ctx, mock.AnythingOfType("[]domain.Transaction"), mock.AnythingOfType("map[string]decimal.Decimal")).Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.Transfer(ctx, source.AccountNumber, dest.AccountNumber, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- Status corrections ---

func (suite *LedgerServiceTestSuite) TestSetTransactionStatus_Success() {
	ctx := context.Background()
	existing := &domain.Transaction{TransactionID: 42, Status: domain.Completed}

	suite.mockLedgerRepo.On("FindTransactionByID", ctx, int64(42)).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("UpdateTransactionStatus", ctx, int64(42), domain.Cancelled, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetTransactionStatus(ctx, 42, domain.Cancelled)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	// Balances are never touched by a status correction.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ApplyBalanceChangesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSetTransactionStatus_UnknownStatus() {
	ctx := context.Background()

	err := suite.service.SetTransactionStatus(ctx, 42, domain.TransactionStatus("REVERSED"))

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnknownStatus)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSetTransactionStatus_NotFound() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindTransactionByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SetTransactionStatus(ctx, 404, domain.Cancelled)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestCancelTransaction_MarksCancelled() {
	ctx := context.Background()
	existing := &domain.Transaction{TransactionID: 7, Status: domain.Completed}

	suite.mockLedgerRepo.On("FindTransactionByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("UpdateTransactionStatus", ctx, int64(7), domain.Cancelled, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.CancelTransaction(ctx, 7)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- Reads ---

func (suite *LedgerServiceTestSuite) TestListTransactionsByAccount_DefaultsAndClampsLimit() {
	ctx := context.Background()
	acct := suite.activeAccount

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, acct.AccountNumber).Return(&acct, nil).Twice()
	suite.mockLedgerRepo.On("ListTransactionsByAccount", ctx, acct.AccountNumber, 20, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()
	suite.mockLedgerRepo.On("ListTransactionsByAccount", ctx, acct.AccountNumber, 100, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()

	_, err := suite.service.ListTransactionsByAccount(ctx, acct.AccountNumber, dto.ListTransactionsParams{})
	suite.Require().NoError(err)

	_, err = suite.service.ListTransactionsByAccount(ctx, acct.AccountNumber, dto.ListTransactionsParams{Limit: 5000})
	suite.Require().NoError(err)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactionsByAccount_AccountNotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "ACC9999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListTransactionsByAccount(ctx, "ACC9999", dto.ListTransactionsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestListRecentTransactions() {
	ctx := context.Background()
	entries := []domain.TransactionHistoryEntry{{ReferenceNumber: "ref-1"}}

	suite.mockLedgerRepo.On("ListRecentTransactions", ctx, 100).Return(entries, nil).Once()

	got, err := suite.service.ListRecentTransactions(ctx)

	suite.Require().NoError(err)
	suite.Equal(entries, got)
}

// --- Run Suite ---
func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
