package pgsql

import (
	"context"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportingRepository struct {
	pool *pgxpool.Pool
}

// newReportingRepository creates the read-only reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &ReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// AccountSummaries joins accounts to their owning customers.
func (r *ReportingRepository) AccountSummaries(ctx context.Context) ([]domain.AccountSummary, error) {
	query := `
		SELECT a.account_number, a.account_type, a.balance,
		       c.first_name || ' ' || c.last_name AS customer_full_name,
		       c.mobile_number
		FROM accounts a
		JOIN customers c ON a.customer_id = c.customer_id
		ORDER BY a.account_number;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account summaries", err)
	}
	defer rows.Close()

	summaries := []domain.AccountSummary{}
	for rows.Next() {
		var s domain.AccountSummary
		if err := rows.Scan(
			&s.AccountNumber,
			&s.AccountType,
			&s.CurrentBalance,
			&s.CustomerFullName,
			&s.CustomerMobileNo,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account summary row", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account summary rows", err)
	}
	return summaries, nil
}

// BankUserSummaries joins staff logins to their branches.
func (r *ReportingRepository) BankUserSummaries(ctx context.Context) ([]domain.BankUserSummary, error) {
	query := `
		SELECT u.user_id, u.username, u.role, u.is_active,
		       b.branch_id, b.branch_name, b.ifsc_code, b.city
		FROM bank_users u
		JOIN branches b ON u.branch_id = b.branch_id
		ORDER BY u.username;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank user summaries", err)
	}
	defer rows.Close()

	summaries := []domain.BankUserSummary{}
	for rows.Next() {
		var s domain.BankUserSummary
		if err := rows.Scan(
			&s.UserID,
			&s.Username,
			&s.Role,
			&s.IsActive,
			&s.BranchID,
			&s.BranchName,
			&s.IFSCCode,
			&s.BranchCity,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank user summary row", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank user summary rows", err)
	}
	return summaries, nil
}

// TransactionReport joins every ledger entry to its account, newest first.
func (r *ReportingRepository) TransactionReport(ctx context.Context) ([]domain.TransactionReportRow, error) {
	query := `
		SELECT t.transaction_timestamp, a.account_number, a.account_type, t.amount
		FROM transactions t
		JOIN accounts a ON t.account_number = a.account_number
		ORDER BY t.transaction_timestamp DESC, t.transaction_id DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction report", err)
	}
	defer rows.Close()

	report := []domain.TransactionReportRow{}
	for rows.Next() {
		var row domain.TransactionReportRow
		if err := rows.Scan(
			&row.Timestamp,
			&row.AccountNumber,
			&row.AccountType,
			&row.Amount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction report row", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction report rows", err)
	}
	return report, nil
}

// BeneficiaryReport lists every saved payee alongside the owning customer's
// first account by account number. Customers without accounts yield NULLs.
func (r *ReportingRepository) BeneficiaryReport(ctx context.Context) ([]domain.BeneficiaryReportRow, error) {
	query := `
		SELECT b.beneficiary_id, b.beneficiary_name, b.beneficiary_account_no,
		       a.account_number, a.account_type
		FROM beneficiaries b
		LEFT JOIN LATERAL (
			SELECT account_number, account_type
			FROM accounts
			WHERE customer_id = b.customer_id
			ORDER BY account_number
			LIMIT 1
		) a ON TRUE
		ORDER BY b.beneficiary_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query beneficiary report", err)
	}
	defer rows.Close()

	report := []domain.BeneficiaryReportRow{}
	for rows.Next() {
		var row domain.BeneficiaryReportRow
		if err := rows.Scan(
			&row.BeneficiaryID,
			&row.Nickname,
			&row.ExternalAccountNumber,
			&row.OriginatingAccountNumber,
			&row.OriginatingAccountType,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan beneficiary report row", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating beneficiary report rows", err)
	}
	return report, nil
}
