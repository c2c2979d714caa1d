package services_test

import (
	"context"
	"testing"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/core/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.AccountSvcFacade
	activeCustomer   domain.Customer
	inactiveCustomer domain.Customer
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCustomerRepo)

	suite.activeCustomer = domain.Customer{
		CustomerID: "CUST001",
		FirstName:  "Asha",
		LastName:   "Rao",
		IsActive:   true,
		KYCStatus:  domain.KYCVerified,
	}
	suite.inactiveCustomer = domain.Customer{
		CustomerID: "CUST002",
		FirstName:  "Vikram",
		LastName:   "Shah",
		IsActive:   false,
		KYCStatus:  domain.KYCVerified,
	}
}

func (suite *AccountServiceTestSuite) TestOpenAccount_Success() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		AccountNumber: "ACC1001",
		CustomerID:    suite.activeCustomer.CustomerID,
		AccountType:   domain.Savings,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(&suite.activeCustomer, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountNumber == req.AccountNumber &&
			acc.CustomerID == req.CustomerID &&
			acc.Balance.IsZero() &&
			acc.OverdraftLimit.IsZero() &&
			acc.Status == domain.AccountActive
	})).Return(nil).Once()

	account, err := suite.service.OpenAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(account.Balance.IsZero())
	suite.Equal(domain.AccountActive, account.Status)

	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOpenAccount_WithOverdraftLimit() {
	ctx := context.Background()
	limit := decimal.NewFromInt(500)
	req := dto.OpenAccountRequest{
		AccountNumber:  "ACC1002",
		CustomerID:     suite.activeCustomer.CustomerID,
		AccountType:    domain.Current,
		OverdraftLimit: &limit,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(&suite.activeCustomer, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.OverdraftLimit.Equal(limit)
	})).Return(nil).Once()

	account, err := suite.service.OpenAccount(ctx, req)

	suite.Require().NoError(err)
	suite.True(account.OverdraftLimit.Equal(limit))
}

func (suite *AccountServiceTestSuite) TestOpenAccount_NegativeOverdraftLimit() {
	ctx := context.Background()
	limit := decimal.NewFromInt(-1)
	req := dto.OpenAccountRequest{
		AccountNumber:  "ACC1003",
		CustomerID:     suite.activeCustomer.CustomerID,
		AccountType:    domain.Savings,
		OverdraftLimit: &limit,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(&suite.activeCustomer, nil).Once()

	_, err := suite.service.OpenAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestOpenAccount_CustomerNotFound() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		AccountNumber: "ACC1004",
		CustomerID:    "CUST999",
		AccountType:   domain.Savings,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "CUST999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.OpenAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestOpenAccount_InactiveCustomer() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		AccountNumber: "ACC1005",
		CustomerID:    suite.inactiveCustomer.CustomerID,
		AccountType:   domain.Savings,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(&suite.inactiveCustomer, nil).Once()

	_, err := suite.service.OpenAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestOpenAccount_DuplicateAccountNumber() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		AccountNumber: "ACC1001",
		CustomerID:    suite.activeCustomer.CustomerID,
		AccountType:   domain.Savings,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, req.CustomerID).Return(&suite.activeCustomer, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.OpenAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestListAccountsByCustomer_Success() {
	ctx := context.Background()
	accounts := []domain.Account{{AccountNumber: "ACC1001", CustomerID: suite.activeCustomer.CustomerID}}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.activeCustomer.CustomerID).Return(&suite.activeCustomer, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCustomer", ctx, suite.activeCustomer.CustomerID).Return(accounts, nil).Once()

	got, err := suite.service.ListAccountsByCustomer(ctx, suite.activeCustomer.CustomerID)

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
}

func (suite *AccountServiceTestSuite) TestListAccountsByCustomer_CustomerNotFound() {
	ctx := context.Background()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, "CUST999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListAccountsByCustomer(ctx, "CUST999")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByCustomer", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCloseAccount_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("CloseAccount", ctx, "ACC1001", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.CloseAccount(ctx, "ACC1001")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCloseAccount_AlreadyClosed() {
	ctx := context.Background()

	suite.mockAccountRepo.On("CloseAccount", ctx, "ACC3001", mock.AnythingOfType("time.Time")).Return(apperrors.ErrAccountClosed).Once()

	err := suite.service.CloseAccount(ctx, "ACC3001")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAccountClosed)
}

// --- Run Suite ---
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
