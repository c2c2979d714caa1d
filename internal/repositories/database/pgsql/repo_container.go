package pgsql

import (
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo)
	customerRepo := newPgxCustomerRepository(dbPool)
	branchRepo := newPgxBranchRepository(dbPool)
	bankUserRepo := newPgxBankUserRepository(dbPool)
	beneficiaryRepo := newPgxBeneficiaryRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		LedgerRepo:      ledgerRepo,
		CustomerRepo:    customerRepo,
		BranchRepo:      branchRepo,
		BankUserRepo:    bankUserRepo,
		BeneficiaryRepo: beneficiaryRepo,
		ReportingRepo:   reportingRepo,
	}
}
