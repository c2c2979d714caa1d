package mapping

import (
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/Ritesh9568/core-banking-api/internal/models"
)

// ToModelAccount converts a domain account to its DB representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountNumber:  d.AccountNumber,
		CustomerID:     d.CustomerID,
		AccountType:    string(d.AccountType),
		Balance:        d.Balance,
		OverdraftLimit: d.OverdraftLimit,
		Status:         string(d.Status),
		OpenDate:       d.OpenDate,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

// ToDomainAccount converts a DB account row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNumber:  m.AccountNumber,
		CustomerID:     m.CustomerID,
		AccountType:    domain.AccountType(m.AccountType),
		Balance:        m.Balance,
		OverdraftLimit: m.OverdraftLimit,
		Status:         domain.AccountStatus(m.Status),
		OpenDate:       m.OpenDate,
		LastUpdatedAt:  m.LastUpdatedAt,
	}
}
