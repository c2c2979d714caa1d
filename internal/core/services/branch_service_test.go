package services_test

import (
	"context"
	"testing"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type BranchServiceTestSuite struct {
	suite.Suite
	mockBranchRepo *MockBranchRepository
	service        portssvc.BranchSvcFacade
}

func (suite *BranchServiceTestSuite) SetupTest() {
	suite.mockBranchRepo = new(MockBranchRepository)
	suite.service = services.NewBranchService(suite.mockBranchRepo)
}

func (suite *BranchServiceTestSuite) TestRemoveBranch_Success() {
	ctx := context.Background()

	suite.mockBranchRepo.On("DeleteBranch", ctx, "BR001").Return(nil).Once()

	err := suite.service.RemoveBranch(ctx, "BR001")

	suite.Require().NoError(err)
	suite.mockBranchRepo.AssertExpectations(suite.T())
}

func (suite *BranchServiceTestSuite) TestRemoveBranch_NotFound() {
	ctx := context.Background()

	suite.mockBranchRepo.On("DeleteBranch", ctx, "BR404").Return(apperrors.ErrNotFound).Once()

	err := suite.service.RemoveBranch(ctx, "BR404")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BranchServiceTestSuite) TestRemoveBranch_StaffStillAssigned() {
	ctx := context.Background()

	suite.mockBranchRepo.On("DeleteBranch", ctx, "BR001").Return(apperrors.ErrConflict).Once()

	err := suite.service.RemoveBranch(ctx, "BR001")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestBranchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BranchServiceTestSuite))
}
