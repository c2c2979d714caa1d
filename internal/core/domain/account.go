package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a customer account.
type AccountType string

const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
	Salary  AccountType = "SALARY"
)

// AccountStatus is the lifecycle state of an account. A CLOSED account is a
// soft-deleted record: it stays in the store but accepts no further
// balance-mutating operations.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountClosed AccountStatus = "CLOSED"
)

// Account holds the mutable balance state the ledger engine protects.
// Invariant for an ACTIVE account: Balance >= -OverdraftLimit.
type Account struct {
	AccountNumber  string          `json:"accountNumber"` // Primary key, immutable
	CustomerID     string          `json:"customerID"`    // FK -> customers.customer_id
	AccountType    AccountType     `json:"accountType"`
	Balance        decimal.Decimal `json:"balance"`        // NUMERIC(19,2); written only by the ledger engine
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"` // >= 0
	Status         AccountStatus   `json:"status"`
	OpenDate       time.Time       `json:"openDate"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// IsActive reports whether the account may take balance-mutating operations.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}
