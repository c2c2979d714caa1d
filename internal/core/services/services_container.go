package services

import (
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Branch = NewBranchService(repos.BranchRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.CustomerRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo)
	container.BankUser = NewBankUserService(cfg, repos.BankUserRepo, repos.BranchRepo)
	container.Beneficiary = NewBeneficiaryService(repos.BeneficiaryRepo, repos.CustomerRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
