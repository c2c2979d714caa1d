package repositories

import (
	"context"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
)

// CustomerRepositoryFacade defines CRUD operations for customer records.
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeactivateCustomer(ctx context.Context, customerID string) error
}

// BranchRepositoryFacade defines CRUD operations for branch records.
type BranchRepositoryFacade interface {
	SaveBranch(ctx context.Context, branch domain.Branch) error
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	UpdateBranch(ctx context.Context, branch domain.Branch) error
	DeleteBranch(ctx context.Context, branchID string) error
}

// BankUserRepositoryFacade defines CRUD operations for staff logins.
type BankUserRepositoryFacade interface {
	SaveBankUser(ctx context.Context, user domain.BankUser) (int64, error)
	FindBankUserByID(ctx context.Context, userID int64) (*domain.BankUser, error)
	FindBankUserByUsername(ctx context.Context, username string) (*domain.BankUser, error)
	ListBankUsers(ctx context.Context, limit int, offset int) ([]domain.BankUser, error)
	UpdateBankUser(ctx context.Context, user domain.BankUser) error
	TouchLastLogin(ctx context.Context, userID int64) error
	DeactivateBankUser(ctx context.Context, userID int64) error
}

// BeneficiaryRepositoryFacade defines CRUD operations for saved payees.
type BeneficiaryRepositoryFacade interface {
	SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) (int64, error)
	FindBeneficiaryByID(ctx context.Context, beneficiaryID int64) (*domain.Beneficiary, error)
	FindBeneficiariesByCustomer(ctx context.Context, customerID string) ([]domain.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error
	DeleteBeneficiary(ctx context.Context, beneficiaryID int64) error
}

// ReportingRepositoryFacade defines the read-only joined projections.
type ReportingRepositoryFacade interface {
	// AccountSummaries joins accounts to their owning customers.
	AccountSummaries(ctx context.Context) ([]domain.AccountSummary, error)
	// BankUserSummaries joins staff logins to their branches.
	BankUserSummaries(ctx context.Context) ([]domain.BankUserSummary, error)
	// TransactionReport joins ledger entries to their accounts.
	TransactionReport(ctx context.Context) ([]domain.TransactionReportRow, error)
	// BeneficiaryReport pairs payees with the owner's first account.
	BeneficiaryReport(ctx context.Context) ([]domain.BeneficiaryReportRow, error)
}
