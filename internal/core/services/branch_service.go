package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/Ritesh9568/core-banking-api/internal/middleware"
)

type branchService struct {
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new BranchService.
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade) portssvc.BranchSvcFacade {
	return &branchService{branchRepo: branchRepo}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

// CreateBranch registers a new branch.
func (s *branchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	branch := domain.Branch{
		BranchID:      req.BranchID,
		BranchName:    req.BranchName,
		IFSCCode:      req.IFSCCode,
		City:          req.City,
		Country:       req.Country,
		DateOpened:    now,
		LastUpdatedAt: &now,
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		logger.Error("Failed to create branch", slog.String("branch_id", req.BranchID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Branch created", slog.String("branch_id", branch.BranchID))
	return &branch, nil
}

// GetBranchByID retrieves a branch.
func (s *branchService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	return s.branchRepo.FindBranchByID(ctx, branchID)
}

// ListBranches retrieves all branches.
func (s *branchService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.branchRepo.ListBranches(ctx)
}

// UpdateBranch updates the mutable fields of an existing branch.
func (s *branchService) UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	branch.BranchName = req.BranchName
	branch.IFSCCode = req.IFSCCode
	branch.City = req.City
	branch.Country = req.Country
	branch.LastUpdatedAt = &now

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		logger.Error("Failed to update branch", slog.String("branch_id", branchID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Branch updated", slog.String("branch_id", branchID))
	return branch, nil
}

// RemoveBranch deletes a branch outright. A branch with staff logins still
// assigned cannot be removed; reassign them first.
func (s *branchService) RemoveBranch(ctx context.Context, branchID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.branchRepo.DeleteBranch(ctx, branchID); err != nil {
		return err
	}

	logger.Info("Branch removed", slog.String("branch_id", branchID))
	return nil
}
