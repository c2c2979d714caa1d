package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	"github.com/Ritesh9568/core-banking-api/internal/models"
	"github.com/Ritesh9568/core-banking-api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxBankUserRepository creates a new repository for staff logins.
func newPgxBankUserRepository(pool *pgxpool.Pool) portsrepo.BankUserRepositoryFacade {
	return &PgxBankUserRepository{pool: pool}
}

var _ portsrepo.BankUserRepositoryFacade = (*PgxBankUserRepository)(nil)

const bankUserColumns = `user_id, branch_id, username, password_hash, role, is_active, last_logged_in, created_on`

func scanBankUserRow(row pgx.Row) (models.BankUser, error) {
	var m models.BankUser
	err := row.Scan(
		&m.UserID,
		&m.BranchID,
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.IsActive,
		&m.LastLoggedIn,
		&m.CreatedOn,
	)
	return m, err
}

// SaveBankUser inserts a new staff login and returns its assigned id.
func (r *PgxBankUserRepository) SaveBankUser(ctx context.Context, user domain.BankUser) (int64, error) {
	query := `
		INSERT INTO bank_users (branch_id, username, password_hash, role, is_active, created_on)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id;
	`
	var userID int64
	err := r.pool.QueryRow(ctx, query,
		user.BranchID,
		user.Username,
		user.PasswordHash,
		string(user.Role),
		user.IsActive,
		user.CreatedOn,
	).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, user.Username)
		}
		return 0, fmt.Errorf("failed to save bank user %s: %w", user.Username, err)
	}
	return userID, nil
}

// FindBankUserByID retrieves a staff login by id.
func (r *PgxBankUserRepository) FindBankUserByID(ctx context.Context, userID int64) (*domain.BankUser, error) {
	query := `
		SELECT ` + bankUserColumns + `
		FROM bank_users
		WHERE user_id = $1;
	`
	m, err := scanBankUserRow(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank user %d: %w", userID, err)
	}
	u := mapping.ToDomainBankUser(m)
	return &u, nil
}

// FindBankUserByUsername retrieves a staff login by username.
func (r *PgxBankUserRepository) FindBankUserByUsername(ctx context.Context, username string) (*domain.BankUser, error) {
	query := `
		SELECT ` + bankUserColumns + `
		FROM bank_users
		WHERE username = $1;
	`
	m, err := scanBankUserRow(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank user %s: %w", username, err)
	}
	u := mapping.ToDomainBankUser(m)
	return &u, nil
}

// ListBankUsers retrieves a paginated list of staff logins.
func (r *PgxBankUserRepository) ListBankUsers(ctx context.Context, limit int, offset int) ([]domain.BankUser, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + bankUserColumns + `
		FROM bank_users
		ORDER BY username
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank users: %w", err)
	}
	defer rows.Close()

	users := []domain.BankUser{}
	for rows.Next() {
		m, err := scanBankUserRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank user row: %w", err)
		}
		users = append(users, mapping.ToDomainBankUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank user rows: %w", err)
	}
	return users, nil
}

// UpdateBankUser updates a staff login's branch assignment, role and
// active flag. Username and password hash are not touched here.
func (r *PgxBankUserRepository) UpdateBankUser(ctx context.Context, user domain.BankUser) error {
	query := `
		UPDATE bank_users
		SET branch_id = $2, role = $3, is_active = $4
		WHERE user_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.BranchID,
		string(user.Role),
		user.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank user %d: %w", user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// TouchLastLogin stamps last_logged_in after a successful authentication.
func (r *PgxBankUserRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	query := `
		UPDATE bank_users
		SET last_logged_in = NOW()
		WHERE user_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to record login for bank user %d: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("bank user " + strconv.FormatInt(userID, 10) + " not found")
	}
	return nil
}

// DeactivateBankUser marks a staff login inactive. The record is kept.
func (r *PgxBankUserRepository) DeactivateBankUser(ctx context.Context, userID int64) error {
	query := `
		UPDATE bank_users
		SET is_active = FALSE
		WHERE user_id = $1 AND is_active = TRUE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate bank user %d: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		_, findErr := r.FindBankUserByID(ctx, userID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check bank user status after deactivation attempt for %d: %w", userID, findErr)
		}
		return apperrors.ErrValidation
	}
	return nil
}
