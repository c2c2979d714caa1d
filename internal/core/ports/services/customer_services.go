package services

import (
	"context"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
)

// CustomerSvcFacade defines customer record management.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeactivateCustomer(ctx context.Context, customerID string) error
}

// BranchSvcFacade defines branch record management.
type BranchSvcFacade interface {
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error)
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	UpdateBranch(ctx context.Context, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error)
	RemoveBranch(ctx context.Context, branchID string) error
}

// BankUserSvcFacade defines staff login management and authentication.
type BankUserSvcFacade interface {
	CreateBankUser(ctx context.Context, req dto.CreateBankUserRequest) (*domain.BankUser, error)
	GetBankUserByID(ctx context.Context, userID int64) (*domain.BankUser, error)
	ListBankUsers(ctx context.Context, limit int, offset int) ([]domain.BankUser, error)
	UpdateBankUser(ctx context.Context, userID int64, req dto.UpdateBankUserRequest) (*domain.BankUser, error)
	DeactivateBankUser(ctx context.Context, userID int64) error

	// Authenticate verifies credentials and returns a signed JWT on success.
	Authenticate(ctx context.Context, username, password string) (string, *domain.BankUser, error)
}

// BeneficiarySvcFacade defines saved-payee management.
type BeneficiarySvcFacade interface {
	AddBeneficiary(ctx context.Context, req dto.AddBeneficiaryRequest) (*domain.Beneficiary, error)
	GetBeneficiaryByID(ctx context.Context, beneficiaryID int64) (*domain.Beneficiary, error)
	ListBeneficiariesByCustomer(ctx context.Context, customerID string) ([]domain.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, beneficiaryID int64, req dto.UpdateBeneficiaryRequest) (*domain.Beneficiary, error)
	RemoveBeneficiary(ctx context.Context, beneficiaryID int64) error
}

// ReportingSvcFacade exposes the read-only joined projections.
type ReportingSvcFacade interface {
	AccountSummaries(ctx context.Context) ([]domain.AccountSummary, error)
	BankUserSummaries(ctx context.Context) ([]domain.BankUserSummary, error)
	TransactionReport(ctx context.Context) ([]domain.TransactionReportRow, error)
	BeneficiaryReport(ctx context.Context) ([]domain.BeneficiaryReportRow, error)
}
