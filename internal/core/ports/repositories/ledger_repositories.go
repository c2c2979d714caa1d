package repositories

import (
	"context"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over the transaction ledger.
type LedgerReader interface {
	// FindTransactionByID retrieves a single ledger entry by its surrogate id.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves ledger entries for an account,
	// newest first, using token-based pagination.
	ListTransactionsByAccount(ctx context.Context, accountNumber string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListRecentTransactions retrieves the most recent entries across all
	// accounts joined with their account type, newest first.
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionHistoryEntry, error)
}

// LedgerWriter defines the ledger's two write paths: the atomic commit unit
// and the status-only correction.
type LedgerWriter interface {
	// SaveEntries commits one money movement as a single unit: it locks the
	// affected accounts in canonical order, re-validates account status and
	// the overdraft floor against the locked balances, applies the balance
	// deltas, and appends the ledger entries. Either everything persists or
	// nothing does. The returned entries carry their assigned surrogate ids.
	SaveEntries(ctx context.Context, entries []domain.Transaction, balanceChanges map[string]decimal.Decimal) ([]domain.Transaction, error)

	// UpdateTransactionStatus sets status and last_updated_at on an existing
	// entry. It never touches account balances or monetary columns.
	UpdateTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus, updatedAt time.Time) error
}

// LedgerRepositoryFacade combines the ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
