package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/Ritesh9568/core-banking-api/internal/middleware"
	"github.com/Ritesh9568/core-banking-api/internal/utils/banking"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrUnknownStatus          = errors.New("unknown transaction status")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	recentListLimit  = 100
)

// ledgerService is the transaction engine. Every balance mutation in the
// system flows through Apply or Transfer; both commit through the repository's
// single atomic unit.
type ledgerService struct {
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Apply validates and commits a single-account money movement.
// The pre-checks here give fast feedback; the repository re-checks account
// status and the overdraft floor against row-locked balances, and that check
// is the authoritative one.
func (s *ledgerService) Apply(ctx context.Context, accountNumber string, txnType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if txnType != domain.Deposit && txnType != domain.Withdrawal {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransactionType, txnType)
	}
	if err := banking.ValidateAmount(amount); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		logger.Error("Failed to fetch account for movement", slog.String("account_number", accountNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if !account.IsActive() {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountClosed, accountNumber)
	}

	delta := banking.SignedDelta(txnType, amount, false)
	if delta.IsNegative() && !banking.WithinOverdraftFloor(account.Balance, account.OverdraftLimit, delta) {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, accountNumber)
	}

	now := time.Now().UTC()
	entry := domain.Transaction{
		ReferenceNumber: uuid.NewString(),
		AccountNumber:   accountNumber,
		TransactionType: txnType,
		Amount:          amount,
		Timestamp:       now,
		Status:          domain.Completed,
		LastUpdatedAt:   now,
	}

	saved, err := s.ledgerRepo.SaveEntries(ctx, []domain.Transaction{entry}, map[string]decimal.Decimal{accountNumber: delta})
	if err != nil {
		logger.Error("Failed to commit movement", slog.String("account_number", accountNumber), slog.String("transaction_type", string(txnType)), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Movement committed",
		slog.String("reference_number", saved[0].ReferenceNumber),
		slog.String("account_number", accountNumber),
		slog.String("transaction_type", string(txnType)),
		slog.String("amount", amount.String()),
	)
	return &saved[0], nil
}

// Transfer validates and commits a two-account money movement. Both legs are
// typed TRANSFER, carry distinct reference numbers and an identical
// timestamp, and commit in the same atomic unit. The debit leg's reference is
// the caller's receipt.
func (s *ledgerService) Transfer(ctx context.Context, sourceAccountNumber, destAccountNumber string, amount decimal.Decimal) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := banking.ValidateAmount(amount); err != nil {
		return "", err
	}
	if sourceAccountNumber == destAccountNumber {
		return "", apperrors.ErrSameAccount
	}

	accounts, err := s.accountRepo.FindAccountsByNumbers(ctx, []string{sourceAccountNumber, destAccountNumber})
	if err != nil {
		logger.Error("Failed to fetch accounts for transfer", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, accountNumber := range []string{sourceAccountNumber, destAccountNumber} {
		account, found := accounts[accountNumber]
		if !found {
			return "", fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		if !account.IsActive() {
			return "", fmt.Errorf("%w: account %s", apperrors.ErrAccountClosed, accountNumber)
		}
	}

	source := accounts[sourceAccountNumber]
	debitDelta := banking.SignedDelta(domain.Transfer, amount, true)
	if !banking.WithinOverdraftFloor(source.Balance, source.OverdraftLimit, debitDelta) {
		return "", fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, sourceAccountNumber)
	}

	now := time.Now().UTC()
	debitLeg := domain.Transaction{
		ReferenceNumber: uuid.NewString(),
		AccountNumber:   sourceAccountNumber,
		TransactionType: domain.Transfer,
		Amount:          amount,
		Timestamp:       now,
		Status:          domain.Completed,
		LastUpdatedAt:   now,
	}
	creditLeg := domain.Transaction{
		ReferenceNumber: uuid.NewString(),
		AccountNumber:   destAccountNumber,
		TransactionType: domain.Transfer,
		Amount:          amount,
		Timestamp:       now,
		Status:          domain.Completed,
		LastUpdatedAt:   now,
	}

	balanceChanges := map[string]decimal.Decimal{
		sourceAccountNumber: debitDelta,
		destAccountNumber:   banking.SignedDelta(domain.Transfer, amount, false),
	}

	if _, err := s.ledgerRepo.SaveEntries(ctx, []domain.Transaction{debitLeg, creditLeg}, balanceChanges); err != nil {
		logger.Error("Failed to commit transfer",
			slog.String("source_account", sourceAccountNumber),
			slog.String("destination_account", destAccountNumber),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	logger.Info("Transfer committed",
		slog.String("debit_reference", debitLeg.ReferenceNumber),
		slog.String("credit_reference", creditLeg.ReferenceNumber),
		slog.String("source_account", sourceAccountNumber),
		slog.String("destination_account", destAccountNumber),
		slog.String("amount", amount.String()),
	)
	return debitLeg.ReferenceNumber, nil
}

// SetTransactionStatus sets the status of an existing entry. This is a
// metadata correction: balances and monetary columns are never touched.
func (s *ledgerService) SetTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if status != domain.Completed && status != domain.Cancelled {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, status)
	}

	if _, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.ledgerRepo.UpdateTransactionStatus(ctx, transactionID, status, time.Now().UTC()); err != nil {
		logger.Error("Failed to update transaction status", slog.Int64("transaction_id", transactionID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Transaction status updated", slog.Int64("transaction_id", transactionID), slog.String("status", string(status)))
	return nil
}

// CancelTransaction marks an entry CANCELLED. The entry remains in the ledger
// and its balance effect stands; a true reversal is a new opposite movement.
func (s *ledgerService) CancelTransaction(ctx context.Context, transactionID int64) error {
	return s.SetTransactionStatus(ctx, transactionID, domain.Cancelled)
}

// GetTransactionByID retrieves a single ledger entry.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return s.ledgerRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactionsByAccount retrieves an account's entries newest first.
func (s *ledgerService) ListTransactionsByAccount(ctx context.Context, accountNumber string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	transactions, nextToken, err := s.ledgerRepo.ListTransactionsByAccount(ctx, accountNumber, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

// ListRecentTransactions retrieves the latest entries across all accounts.
func (s *ledgerService) ListRecentTransactions(ctx context.Context) ([]domain.TransactionHistoryEntry, error) {
	return s.ledgerRepo.ListRecentTransactions(ctx, recentListLimit)
}
