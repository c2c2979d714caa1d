package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
	CustomerRepo    CustomerRepositoryFacade
	BranchRepo      BranchRepositoryFacade
	BankUserRepo    BankUserRepositoryFacade
	BeneficiaryRepo BeneficiaryRepositoryFacade
	ReportingRepo   ReportingRepositoryFacade
}
