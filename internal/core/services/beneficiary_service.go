package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/Ritesh9568/core-banking-api/internal/middleware"
)

type beneficiaryService struct {
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
	customerRepo    portsrepo.CustomerRepositoryFacade
}

// NewBeneficiaryService creates a new BeneficiaryService.
func NewBeneficiaryService(beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) portssvc.BeneficiarySvcFacade {
	return &beneficiaryService{
		beneficiaryRepo: beneficiaryRepo,
		customerRepo:    customerRepo,
	}
}

var _ portssvc.BeneficiarySvcFacade = (*beneficiaryService)(nil)

// AddBeneficiary saves a payee under an existing customer.
func (s *beneficiaryService) AddBeneficiary(ctx context.Context, req dto.AddBeneficiaryRequest) (*domain.Beneficiary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	beneficiary := domain.Beneficiary{
		CustomerID:           req.CustomerID,
		BeneficiaryName:      req.BeneficiaryName,
		BeneficiaryAccountNo: req.BeneficiaryAccountNo,
		BeneficiaryIFSC:      req.BeneficiaryIFSC,
		AddedOn:              time.Now().UTC(),
	}

	id, err := s.beneficiaryRepo.SaveBeneficiary(ctx, beneficiary)
	if err != nil {
		logger.Error("Failed to add beneficiary", slog.String("customer_id", req.CustomerID), slog.String("error", err.Error()))
		return nil, err
	}
	beneficiary.BeneficiaryID = id

	logger.Info("Beneficiary added", slog.Int64("beneficiary_id", id), slog.String("customer_id", req.CustomerID))
	return &beneficiary, nil
}

// GetBeneficiaryByID retrieves a payee.
func (s *beneficiaryService) GetBeneficiaryByID(ctx context.Context, beneficiaryID int64) (*domain.Beneficiary, error) {
	return s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
}

// ListBeneficiariesByCustomer retrieves all payees saved by a customer.
func (s *beneficiaryService) ListBeneficiariesByCustomer(ctx context.Context, customerID string) ([]domain.Beneficiary, error) {
	return s.beneficiaryRepo.FindBeneficiariesByCustomer(ctx, customerID)
}

// UpdateBeneficiary replaces a payee's name, account number and IFSC.
func (s *beneficiaryService) UpdateBeneficiary(ctx context.Context, beneficiaryID int64, req dto.UpdateBeneficiaryRequest) (*domain.Beneficiary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}

	beneficiary.BeneficiaryName = req.BeneficiaryName
	beneficiary.BeneficiaryAccountNo = req.BeneficiaryAccountNo
	beneficiary.BeneficiaryIFSC = req.BeneficiaryIFSC

	if err := s.beneficiaryRepo.UpdateBeneficiary(ctx, *beneficiary); err != nil {
		logger.Error("Failed to update beneficiary", slog.Int64("beneficiary_id", beneficiaryID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Beneficiary updated", slog.Int64("beneficiary_id", beneficiaryID))
	return beneficiary, nil
}

// RemoveBeneficiary deletes a payee.
func (s *beneficiaryService) RemoveBeneficiary(ctx context.Context, beneficiaryID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.beneficiaryRepo.DeleteBeneficiary(ctx, beneficiaryID); err != nil {
		return err
	}

	logger.Info("Beneficiary removed", slog.Int64("beneficiary_id", beneficiaryID))
	return nil
}
