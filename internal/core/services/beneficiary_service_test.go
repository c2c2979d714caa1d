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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BeneficiaryRepository ---
type MockBeneficiaryRepository struct {
	mock.Mock
}

var _ portsrepo.BeneficiaryRepositoryFacade = (*MockBeneficiaryRepository)(nil)

func (m *MockBeneficiaryRepository) SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) (int64, error) {
	args := m.Called(ctx, beneficiary)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID int64) (*domain.Beneficiary, error) {
	args := m.Called(ctx, beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) FindBeneficiariesByCustomer(ctx context.Context, customerID string) ([]domain.Beneficiary, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}

func (m *MockBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	args := m.Called(ctx, beneficiary)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) DeleteBeneficiary(ctx context.Context, beneficiaryID int64) error {
	args := m.Called(ctx, beneficiaryID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type BeneficiaryServiceTestSuite struct {
	suite.Suite
	mockBeneficiaryRepo *MockBeneficiaryRepository
	mockCustomerRepo    *MockCustomerRepository
	service             portssvc.BeneficiarySvcFacade
	existingBeneficiary domain.Beneficiary
}

func (suite *BeneficiaryServiceTestSuite) SetupTest() {
	suite.mockBeneficiaryRepo = new(MockBeneficiaryRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewBeneficiaryService(suite.mockBeneficiaryRepo, suite.mockCustomerRepo)

	suite.existingBeneficiary = domain.Beneficiary{
		BeneficiaryID:        7,
		CustomerID:           "CUST001",
		BeneficiaryName:      "Ravi Kumar",
		BeneficiaryAccountNo: "EXT9001",
		BeneficiaryIFSC:      "HDFC0000123",
		AddedOn:              time.Now().UTC(),
	}
}

func (suite *BeneficiaryServiceTestSuite) TestUpdateBeneficiary_Success() {
	ctx := context.Background()
	req := dto.UpdateBeneficiaryRequest{
		BeneficiaryName:      "Ravi K",
		BeneficiaryAccountNo: "EXT9002",
		BeneficiaryIFSC:      "ICIC0000456",
	}

	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, suite.existingBeneficiary.BeneficiaryID).
		Return(&suite.existingBeneficiary, nil).Once()
	suite.mockBeneficiaryRepo.On("UpdateBeneficiary", ctx, mock.MatchedBy(func(b domain.Beneficiary) bool {
		return b.BeneficiaryID == suite.existingBeneficiary.BeneficiaryID &&
			b.CustomerID == suite.existingBeneficiary.CustomerID &&
			b.BeneficiaryName == req.BeneficiaryName &&
			b.BeneficiaryAccountNo == req.BeneficiaryAccountNo &&
			b.BeneficiaryIFSC == req.BeneficiaryIFSC
	})).Return(nil).Once()

	beneficiary, err := suite.service.UpdateBeneficiary(ctx, suite.existingBeneficiary.BeneficiaryID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(beneficiary)
	suite.Equal("Ravi K", beneficiary.BeneficiaryName)
	suite.Equal("CUST001", beneficiary.CustomerID)
	suite.mockBeneficiaryRepo.AssertExpectations(suite.T())
}

func (suite *BeneficiaryServiceTestSuite) TestUpdateBeneficiary_NotFound() {
	ctx := context.Background()
	req := dto.UpdateBeneficiaryRequest{
		BeneficiaryName:      "Ravi K",
		BeneficiaryAccountNo: "EXT9002",
		BeneficiaryIFSC:      "ICIC0000456",
	}

	suite.mockBeneficiaryRepo.On("FindBeneficiaryByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	beneficiary, err := suite.service.UpdateBeneficiary(ctx, 404, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(beneficiary)
	suite.mockBeneficiaryRepo.AssertNotCalled(suite.T(), "UpdateBeneficiary", mock.Anything, mock.Anything)
}

func TestBeneficiaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BeneficiaryServiceTestSuite))
}
