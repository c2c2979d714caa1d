package dto

import (
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest defines the data needed to open a new account.
// The account starts with a zero balance; money arrives via deposits.
type OpenAccountRequest struct {
	AccountNumber  string             `json:"accountNumber" binding:"required,max=15"`
	CustomerID     string             `json:"customerID" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CURRENT SALARY"`
	OverdraftLimit *decimal.Decimal   `json:"overdraftLimit"` // Optional, defaults to zero
}

// AccountResponse mirrors domain.Account.
type AccountResponse struct {
	AccountNumber  string               `json:"accountNumber"`
	CustomerID     string               `json:"customerID"`
	AccountType    domain.AccountType   `json:"accountType"`
	Balance        decimal.Decimal      `json:"balance"`
	OverdraftLimit decimal.Decimal      `json:"overdraftLimit"`
	Status         domain.AccountStatus `json:"status"`
	OpenDate       time.Time            `json:"openDate"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber:  acc.AccountNumber,
		CustomerID:     acc.CustomerID,
		AccountType:    acc.AccountType,
		Balance:        acc.Balance,
		OverdraftLimit: acc.OverdraftLimit,
		Status:         acc.Status,
		OpenDate:       acc.OpenDate,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accs []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accs))
	for i := range accs {
		out[i] = ToAccountResponse(&accs[i])
	}
	return out
}
