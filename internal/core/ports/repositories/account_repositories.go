package repositories

import (
	"context"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByNumber retrieves a specific account by its account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccountsByNumbers retrieves multiple accounts keyed by account number.
	FindAccountsByNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error)

	// FindAccountsByCustomer retrieves all accounts owned by a customer.
	FindAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data. Balance columns
// are NOT written through this interface; only the ledger engine's
// transactional path mutates them.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// CloseAccount marks an account CLOSED (soft delete; the row is kept).
	CloseAccount(ctx context.Context, accountNumber string, now time.Time) error
}

// AccountTransactionSupport defines the operations the ledger repository
// composes into its atomic commit unit.
type AccountTransactionSupport interface {
	// FindAccountsByNumbersForUpdate selects the accounts in ascending
	// account-number order and locks the rows for update. Must be called
	// within a transaction; the canonical ordering prevents deadlock between
	// concurrent transfers over the same pair of accounts.
	FindAccountsByNumbersForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []string) (map[string]domain.Account, error)

	// ApplyBalanceChangesInTx applies balance deltas to the locked accounts
	// within the given transaction, updating last_updated_at.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
