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
	"github.com/shopspring/decimal"
)

// accountService manages account records. Balances are read-only here; only
// the ledger engine writes them.
type accountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// OpenAccount creates a new ACTIVE account with a zero balance. Money arrives
// through the ledger engine, never at open time.
func (s *accountService) OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("%w: customer %s is inactive", apperrors.ErrValidation, req.CustomerID)
	}

	overdraftLimit := decimal.Zero
	if req.OverdraftLimit != nil {
		if req.OverdraftLimit.IsNegative() {
			return nil, fmt.Errorf("%w: overdraft limit must not be negative", apperrors.ErrValidation)
		}
		overdraftLimit = *req.OverdraftLimit
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountNumber:  req.AccountNumber,
		CustomerID:     req.CustomerID,
		AccountType:    req.AccountType,
		Balance:        decimal.Zero,
		OverdraftLimit: overdraftLimit,
		Status:         domain.AccountActive,
		OpenDate:       now,
		LastUpdatedAt:  now,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to open account", slog.String("account_number", req.AccountNumber), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account opened", slog.String("account_number", account.AccountNumber), slog.String("customer_id", account.CustomerID))
	return &account, nil
}

// GetAccountByNumber retrieves an account.
func (s *accountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByNumber(ctx, accountNumber)
}

// ListAccountsByCustomer retrieves all accounts owned by a customer.
func (s *accountService) ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, err
	}
	return s.accountRepo.FindAccountsByCustomer(ctx, customerID)
}

// ListAccounts retrieves a paginated account listing.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// CloseAccount soft-deletes an account. The record and its ledger history
// stay; further balance-mutating operations are refused.
func (s *accountService) CloseAccount(ctx context.Context, accountNumber string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.CloseAccount(ctx, accountNumber, time.Now().UTC()); err != nil {
		return err
	}

	logger.Info("Account closed", slog.String("account_number", accountNumber))
	return nil
}
