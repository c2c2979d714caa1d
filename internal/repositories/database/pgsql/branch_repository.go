package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	"github.com/Ritesh9568/core-banking-api/internal/models"
	"github.com/Ritesh9568/core-banking-api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBranchRepository struct {
	pool *pgxpool.Pool
}

// newPgxBranchRepository creates a new repository for branch data.
func newPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{pool: pool}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchColumns = `branch_id, branch_name, ifsc_code, city, country, date_opened, last_updated_at`

func scanBranchRow(row pgx.Row) (models.Branch, error) {
	var m models.Branch
	err := row.Scan(
		&m.BranchID,
		&m.BranchName,
		&m.IFSCCode,
		&m.City,
		&m.Country,
		&m.DateOpened,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveBranch inserts a new branch.
func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)

	query := `
		INSERT INTO branches (branch_id, branch_name, ifsc_code, city, country, date_opened, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BranchID,
		m.BranchName,
		m.IFSCCode,
		m.City,
		m.Country,
		m.DateOpened,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: branch %s already exists", apperrors.ErrDuplicate, m.BranchID)
		}
		return fmt.Errorf("failed to save branch %s: %w", m.BranchID, err)
	}
	return nil
}

// FindBranchByID retrieves a branch by ID.
func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM branches
		WHERE branch_id = $1;
	`
	m, err := scanBranchRow(r.pool.QueryRow(ctx, query, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find branch %s: %w", branchID, err)
	}
	b := mapping.ToDomainBranch(m)
	return &b, nil
}

// ListBranches retrieves all branches.
func (r *PgxBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM branches
		ORDER BY branch_name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		m, err := scanBranchRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch row: %w", err)
		}
		branches = append(branches, mapping.ToDomainBranch(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch rows: %w", err)
	}
	return branches, nil
}

// UpdateBranch updates the mutable fields of an existing branch.
func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)

	query := `
		UPDATE branches
		SET branch_name = $2, ifsc_code = $3, city = $4, country = $5, last_updated_at = $6
		WHERE branch_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.BranchID,
		m.BranchName,
		m.IFSCCode,
		m.City,
		m.Country,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update branch %s: %w", m.BranchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBranch removes a branch. Branches with staff logins still assigned
// are protected by the foreign key and surface as a conflict.
func (r *PgxBranchRepository) DeleteBranch(ctx context.Context, branchID string) error {
	query := `DELETE FROM branches WHERE branch_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, branchID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: branch %s still has staff assigned", apperrors.ErrConflict, branchID)
		}
		return fmt.Errorf("failed to delete branch %s: %w", branchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
