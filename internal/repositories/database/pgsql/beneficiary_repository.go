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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBeneficiaryRepository struct {
	pool *pgxpool.Pool
}

// newPgxBeneficiaryRepository creates a new repository for saved payees.
func newPgxBeneficiaryRepository(pool *pgxpool.Pool) portsrepo.BeneficiaryRepositoryFacade {
	return &PgxBeneficiaryRepository{pool: pool}
}

var _ portsrepo.BeneficiaryRepositoryFacade = (*PgxBeneficiaryRepository)(nil)

const beneficiaryColumns = `beneficiary_id, customer_id, beneficiary_name, beneficiary_account_no, beneficiary_ifsc, added_on`

func scanBeneficiaryRow(row pgx.Row) (models.Beneficiary, error) {
	var m models.Beneficiary
	err := row.Scan(
		&m.BeneficiaryID,
		&m.CustomerID,
		&m.BeneficiaryName,
		&m.BeneficiaryAccountNo,
		&m.BeneficiaryIFSC,
		&m.AddedOn,
	)
	return m, err
}

// SaveBeneficiary inserts a new payee and returns its assigned id.
func (r *PgxBeneficiaryRepository) SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) (int64, error) {
	query := `
		INSERT INTO beneficiaries (customer_id, beneficiary_name, beneficiary_account_no, beneficiary_ifsc, added_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING beneficiary_id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		beneficiary.CustomerID,
		beneficiary.BeneficiaryName,
		beneficiary.BeneficiaryAccountNo,
		beneficiary.BeneficiaryIFSC,
		beneficiary.AddedOn,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save beneficiary for customer %s: %w", beneficiary.CustomerID, err)
	}
	return id, nil
}

// FindBeneficiaryByID retrieves a payee by id.
func (r *PgxBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID int64) (*domain.Beneficiary, error) {
	query := `
		SELECT ` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE beneficiary_id = $1;
	`
	m, err := scanBeneficiaryRow(r.pool.QueryRow(ctx, query, beneficiaryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find beneficiary %d: %w", beneficiaryID, err)
	}
	b := mapping.ToDomainBeneficiary(m)
	return &b, nil
}

// FindBeneficiariesByCustomer retrieves all payees saved by a customer.
func (r *PgxBeneficiaryRepository) FindBeneficiariesByCustomer(ctx context.Context, customerID string) ([]domain.Beneficiary, error) {
	query := `
		SELECT ` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE customer_id = $1
		ORDER BY added_on DESC;
	`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query beneficiaries for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	beneficiaries := []domain.Beneficiary{}
	for rows.Next() {
		m, err := scanBeneficiaryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary row for customer %s: %w", customerID, err)
		}
		beneficiaries = append(beneficiaries, mapping.ToDomainBeneficiary(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beneficiary rows for customer %s: %w", customerID, err)
	}
	return beneficiaries, nil
}

// UpdateBeneficiary updates a payee's name, account number and IFSC. The
// owning customer is fixed at creation.
func (r *PgxBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	query := `
		UPDATE beneficiaries
		SET beneficiary_name = $2, beneficiary_account_no = $3, beneficiary_ifsc = $4
		WHERE beneficiary_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		beneficiary.BeneficiaryID,
		beneficiary.BeneficiaryName,
		beneficiary.BeneficiaryAccountNo,
		beneficiary.BeneficiaryIFSC,
	)
	if err != nil {
		return fmt.Errorf("failed to update beneficiary %d: %w", beneficiary.BeneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBeneficiary removes a payee. Payees carry no ledger history, so this
// is a hard delete.
func (r *PgxBeneficiaryRepository) DeleteBeneficiary(ctx context.Context, beneficiaryID int64) error {
	query := `DELETE FROM beneficiaries WHERE beneficiary_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, beneficiaryID)
	if err != nil {
		return fmt.Errorf("failed to delete beneficiary %d: %w", beneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("beneficiary " + strconv.FormatInt(beneficiaryID, 10) + " not found")
	}
	return nil
}
