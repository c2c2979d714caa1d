package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	"github.com/Ritesh9568/core-banking-api/internal/models"
	"github.com/Ritesh9568/core-banking-api/internal/utils/banking"
	"github.com/Ritesh9568/core-banking-api/internal/utils/mapping"
	"github.com/Ritesh9568/core-banking-api/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const transactionColumns = `transaction_id, reference_number, account_number, transaction_type, amount, transaction_timestamp, status, last_updated_at`

func scanTransactionRow(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.ReferenceNumber,
		&m.AccountNumber,
		&m.TransactionType,
		&m.Amount,
		&m.Timestamp,
		&m.Status,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveEntries commits one money movement as a single unit. The affected
// accounts are locked in ascending account-number order, account status and
// the overdraft floor are re-checked against the locked balances, the balance
// deltas are applied, and the ledger entries are appended. Either everything
// persists or nothing does.
func (r *PgxLedgerRepository) SaveEntries(ctx context.Context, entries []domain.Transaction, balanceChanges map[string]decimal.Decimal) ([]domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	// 1. Lock the affected accounts. The query orders by account number, so
	// concurrent movements over the same pair acquire locks in one sequence.
	accountNumbers := make([]string, 0, len(balanceChanges))
	for n := range balanceChanges {
		accountNumbers = append(accountNumbers, n)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByNumbersForUpdate(ctx, tx, accountNumbers)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, translateConcurrencyError(err, "failed to lock accounts for update")
	}

	// 2. Re-validate against the locked state. The service checks the same
	// rules up front, but only this check sees balances no concurrent
	// movement can still change.
	for accountNumber, delta := range balanceChanges {
		acc := lockedAccounts[accountNumber]
		if !acc.IsActive() {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountClosed, accountNumber)
		}
		if delta.IsNegative() && !banking.WithinOverdraftFloor(acc.Balance, acc.OverdraftLimit, delta) {
			return nil, fmt.Errorf("%w: account %s balance %s cannot absorb %s", apperrors.ErrInsufficientFunds, accountNumber, acc.Balance, delta)
		}
	}

	// 3. Apply the balance deltas.
	now := time.Now().UTC()
	if len(entries) > 0 {
		now = entries[0].LastUpdatedAt
	}
	if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, balanceChanges, now); err != nil {
		return nil, translateConcurrencyError(err, "failed to apply balance changes")
	}

	// 4. Append the ledger entries and collect their assigned ids.
	insertQuery := `
		INSERT INTO transactions (reference_number, account_number, transaction_type, amount, transaction_timestamp, status, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING transaction_id;
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelTransaction(entry)
		batch.Queue(insertQuery,
			m.ReferenceNumber,
			m.AccountNumber,
			m.TransactionType,
			m.Amount,
			m.Timestamp,
			m.Status,
			m.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	saved := make([]domain.Transaction, len(entries))
	var batchErr error
	for i := range entries {
		var id int64
		if err := br.QueryRow().Scan(&id); err != nil {
			if batchErr == nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					batchErr = fmt.Errorf("%w: reference %s already recorded", apperrors.ErrDuplicate, entries[i].ReferenceNumber)
				} else {
					batchErr = fmt.Errorf("failed to insert ledger entry %s: %w", entries[i].ReferenceNumber, err)
				}
			}
			continue
		}
		saved[i] = entries[i]
		saved[i].TransactionID = id
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close ledger entry batch: %w", err)
	}
	if batchErr != nil {
		return nil, batchErr
	}

	// 5. Commit. A failed commit maps to a retryable conflict; nothing was
	// persisted, and the caller may replay the same movement safely.
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return saved, nil
}

// FindTransactionByID retrieves a single ledger entry by its surrogate id.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	m, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+strconv.FormatInt(transactionID, 10), err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByAccount retrieves ledger entries for an account, newest
// first, using token-based pagination.
func (r *PgxLedgerRepository) ListTransactionsByAccount(ctx context.Context, accountNumber string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to decide whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_number = $1
	`
	// Stable newest-first ordering; transaction_id breaks timestamp ties.
	orderByClause := `ORDER BY transaction_timestamp DESC, transaction_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{accountNumber}

	if nextToken != nil && *nextToken != "" {
		lastTimestamp, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (transaction_timestamp, transaction_id) < ($2, $3)`
		args = append(args, lastTimestamp, lastID)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for account "+accountNumber, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransactionRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for account "+accountNumber, err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for account "+accountNumber, err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		// The token points at the last item included in this page; the next
		// query resumes strictly after it.
		last := results[limit-1]
		token := pagination.EncodeToken(last.Timestamp, last.TransactionID)
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// ListRecentTransactions retrieves the most recent ledger entries across all
// accounts joined with the account's type, newest first.
func (r *PgxLedgerRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.TransactionHistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT t.transaction_id, t.reference_number, t.amount, t.transaction_type, t.transaction_timestamp, t.status, t.account_number, a.account_type
		FROM transactions t
		JOIN accounts a ON t.account_number = a.account_number
		ORDER BY t.transaction_timestamp DESC, t.transaction_id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent transactions", err)
	}
	defer rows.Close()

	entries := []domain.TransactionHistoryEntry{}
	for rows.Next() {
		var e domain.TransactionHistoryEntry
		if err := rows.Scan(
			&e.TransactionID,
			&e.ReferenceNumber,
			&e.Amount,
			&e.TransactionType,
			&e.Timestamp,
			&e.Status,
			&e.AccountNumber,
			&e.AccountType,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recent transaction row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating recent transaction rows", err)
	}
	return entries, nil
}

// UpdateTransactionStatus sets status and last_updated_at on an existing
// entry. Monetary columns and account balances are never touched here.
func (r *PgxLedgerRepository) UpdateTransactionStatus(ctx context.Context, transactionID int64, status domain.TransactionStatus, updatedAt time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, last_updated_at = $3
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, status, updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for transaction "+strconv.FormatInt(transactionID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + strconv.FormatInt(transactionID, 10) + " not found for update")
	}
	return nil
}
