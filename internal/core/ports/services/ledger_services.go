package services

import (
	"context"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerWriterSvc defines the balance-mutating operations of the ledger engine.
type LedgerWriterSvc interface {
	// Apply validates and commits a single-account money movement (DEPOSIT or
	// WITHDRAWAL) and returns the committed ledger entry, including its
	// assigned reference number.
	Apply(ctx context.Context, accountNumber string, txnType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error)

	// Transfer validates and commits a two-account money movement and returns
	// the debit leg's reference number as the caller's receipt.
	Transfer(ctx context.Context, sourceAccountNumber, destAccountNumber string, amount decimal.Decimal) (string, error)
}

// TransactionStatusSvc permits post-hoc status corrections. Changing a
// transaction's status never touches any account balance.
type TransactionStatusSvc interface {
	// SetTransactionStatus sets the status of an existing ledger entry.
	SetTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus) error

	// CancelTransaction is the soft-delete path: it marks an entry CANCELLED
	// without removing it or reversing its balance effect.
	CancelTransaction(ctx context.Context, transactionID int64) error
}

// LedgerReaderSvc defines read operations over the ledger.
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves a single ledger entry.
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves an account's entries newest first.
	ListTransactionsByAccount(ctx context.Context, accountNumber string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListRecentTransactions retrieves the latest entries across all accounts.
	ListRecentTransactions(ctx context.Context) ([]domain.TransactionHistoryEntry, error)
}

// LedgerSvcFacade combines all ledger engine interfaces.
type LedgerSvcFacade interface {
	LedgerWriterSvc
	TransactionStatusSvc
	LedgerReaderSvc
}
