package services

import (
	"context"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
)

// AccountSvcFacade defines account management operations. These are thin
// reads/writes; balance mutation is exclusively the ledger engine's job.
type AccountSvcFacade interface {
	// OpenAccount creates a new account with a zero balance.
	OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*domain.Account, error)

	// GetAccountByNumber retrieves an account.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccountsByCustomer retrieves all accounts owned by a customer.
	ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)

	// ListAccounts retrieves a paginated account listing.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// CloseAccount soft-deletes an account. Closed accounts accept no further
	// balance-mutating operations but keep their history.
	CloseAccount(ctx context.Context, accountNumber string) error
}
