package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	"github.com/Ritesh9568/core-banking-api/internal/core/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeLedgerStore is an in-memory stand-in for the pgsql repositories. A
// single mutex plays the role of row locks: SaveEntries re-validates status
// and the overdraft floor under the lock, so a stale pre-check in the
// service can never over-draw an account.
type fakeLedgerStore struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	entries  []domain.Transaction
	nextID   int64
}

var _ portsrepo.LedgerRepositoryFacade = (*fakeLedgerStore)(nil)
var _ portsrepo.AccountRepositoryFacade = (*fakeLedgerStore)(nil)

func newFakeLedgerStore(accounts ...domain.Account) *fakeLedgerStore {
	s := &fakeLedgerStore{accounts: make(map[string]domain.Account)}
	for _, a := range accounts {
		s.accounts[a.AccountNumber] = a
	}
	return s
}

func (s *fakeLedgerStore) SaveEntries(ctx context.Context, entries []domain.Transaction, balanceChanges map[string]decimal.Decimal) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for accountNumber, delta := range balanceChanges {
		account, ok := s.accounts[accountNumber]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
		}
		if !account.IsActive() {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountClosed, accountNumber)
		}
		if account.Balance.Add(delta).LessThan(account.OverdraftLimit.Neg()) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, accountNumber)
		}
	}

	for accountNumber, delta := range balanceChanges {
		account := s.accounts[accountNumber]
		account.Balance = account.Balance.Add(delta)
		s.accounts[accountNumber] = account
	}

	saved := make([]domain.Transaction, len(entries))
	copy(saved, entries)
	for i := range saved {
		s.nextID++
		saved[i].TransactionID = s.nextID
	}
	s.entries = append(s.entries, saved...)
	return saved, nil
}

func (s *fakeLedgerStore) UpdateTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].TransactionID == transactionID {
			s.entries[i].Status = status
			s.entries[i].LastUpdatedAt = updatedAt
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *fakeLedgerStore) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].TransactionID == transactionID {
			entry := s.entries[i]
			return &entry, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *fakeLedgerStore) ListTransactionsByAccount(ctx context.Context, accountNumber string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return nil, nil, errors.New("not implemented")
}

func (s *fakeLedgerStore) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionHistoryEntry, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeLedgerStore) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountNumber]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (s *fakeLedgerStore) FindAccountsByNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := make(map[string]domain.Account, len(accountNumbers))
	for _, n := range accountNumbers {
		if account, ok := s.accounts[n]; ok {
			found[n] = account
		}
	}
	return found, nil
}

func (s *fakeLedgerStore) FindAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeLedgerStore) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeLedgerStore) SaveAccount(ctx context.Context, account domain.Account) error {
	return errors.New("not implemented")
}

func (s *fakeLedgerStore) CloseAccount(ctx context.Context, accountNumber string, now time.Time) error {
	return errors.New("not implemented")
}

func (s *fakeLedgerStore) FindAccountsByNumbersForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []string) (map[string]domain.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeLedgerStore) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	return errors.New("not implemented")
}

func (s *fakeLedgerStore) balance(accountNumber string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[accountNumber].Balance
}

func activeAccount(number string, balance int64) domain.Account {
	now := time.Now().UTC()
	return domain.Account{
		AccountNumber:  number,
		CustomerID:     "CUST001",
		AccountType:    domain.Savings,
		Balance:        decimal.NewFromInt(balance),
		OverdraftLimit: decimal.Zero,
		Status:         domain.AccountActive,
		OpenDate:       now,
		LastUpdatedAt:  now,
	}
}

// Crossing transfers over the same pair of accounts must conserve money and
// leave the symmetric workload back where it started.
func TestConcurrentCrossingTransfers(t *testing.T) {
	store := newFakeLedgerStore(
		activeAccount("ACC1001", 1000),
		activeAccount("ACC2001", 1000),
	)
	svc := services.NewLedgerService(store, store)
	ctx := context.Background()

	const n = 100
	amount := decimal.NewFromInt(1)

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Transfer(ctx, "ACC1001", "ACC2001", amount); err != nil {
				t.Errorf("ACC1001->ACC2001: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.Transfer(ctx, "ACC2001", "ACC1001", amount); err != nil {
				t.Errorf("ACC2001->ACC1001: %v", err)
			}
		}()
	}
	wg.Wait()

	b1 := store.balance("ACC1001")
	b2 := store.balance("ACC2001")
	require.True(t, b1.Equal(decimal.NewFromInt(1000)), "ACC1001 balance: %s", b1)
	require.True(t, b2.Equal(decimal.NewFromInt(1000)), "ACC2001 balance: %s", b2)
	require.Len(t, store.entries, 4*n)
}

// Concurrent withdrawals against a small balance: only as many may succeed
// as the balance covers, and the floor is never breached.
func TestConcurrentWithdrawalsRespectFloor(t *testing.T) {
	store := newFakeLedgerStore(activeAccount("ACC1001", 100))
	svc := services.NewLedgerService(store, store)
	ctx := context.Background()

	const workers = 50
	amount := decimal.NewFromInt(10)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Apply(ctx, "ACC1001", domain.Withdrawal, amount)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			if !errors.Is(err, apperrors.ErrInsufficientFunds) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 10, succeeded)
	require.True(t, store.balance("ACC1001").IsZero(), "balance: %s", store.balance("ACC1001"))
	require.Len(t, store.entries, 10)
}

// Concurrent deposits all land; the total is exact.
func TestConcurrentDeposits(t *testing.T) {
	store := newFakeLedgerStore(activeAccount("ACC1001", 0))
	svc := services.NewLedgerService(store, store)
	ctx := context.Background()

	const workers = 100
	amount := decimal.NewFromInt(5)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Apply(ctx, "ACC1001", domain.Deposit, amount); err != nil {
				t.Errorf("deposit: %v", err)
			}
		}()
	}
	wg.Wait()

	want := decimal.NewFromInt(workers * 5)
	require.True(t, store.balance("ACC1001").Equal(want), "balance: %s", store.balance("ACC1001"))
}
