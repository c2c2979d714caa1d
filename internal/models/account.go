package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table.
type Account struct {
	AccountNumber  string          `db:"account_number"`
	CustomerID     string          `db:"customer_id"`
	AccountType    string          `db:"account_type"`
	Balance        decimal.Decimal `db:"balance"`
	OverdraftLimit decimal.Decimal `db:"overdraft_limit"`
	Status         string          `db:"status"`
	OpenDate       time.Time       `db:"open_date"`
	LastUpdatedAt  time.Time       `db:"last_updated_at"`
}
