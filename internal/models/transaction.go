package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Monetary columns are
// append-only; only status and last_updated_at change after insert.
type Transaction struct {
	TransactionID   int64           `db:"transaction_id"`
	ReferenceNumber string          `db:"reference_number"`
	AccountNumber   string          `db:"account_number"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Timestamp       time.Time       `db:"transaction_timestamp"`
	Status          string          `db:"status"`
	LastUpdatedAt   time.Time       `db:"last_updated_at"`
}
