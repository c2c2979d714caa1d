package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType names the money movement recorded by a ledger entry.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Transfer   TransactionType = "TRANSFER"
)

// TransactionStatus is the post-hoc status of a ledger entry. Moving a
// COMPLETED entry to CANCELLED is a metadata correction only; it never
// reverses the balance effect.
type TransactionStatus string

const (
	Completed TransactionStatus = "COMPLETED"
	Cancelled TransactionStatus = "CANCELLED"
)

// Transaction is one leg of a money movement in the append-only ledger.
// A deposit or withdrawal produces one entry; a transfer produces two
// (a debit leg on the source and a credit leg on the destination) with
// distinct reference numbers and an identical timestamp.
type Transaction struct {
	TransactionID   int64             `json:"transactionID"`   // Surrogate key, monotonic
	ReferenceNumber string            `json:"referenceNumber"` // Globally unique, opaque; the external identifier of the leg
	AccountNumber   string            `json:"accountNumber"`   // FK -> accounts.account_number
	TransactionType TransactionType   `json:"transactionType"`
	Amount          decimal.Decimal   `json:"amount"` // Strictly positive
	Timestamp       time.Time         `json:"timestamp"`
	Status          TransactionStatus `json:"status"`
	LastUpdatedAt   time.Time         `json:"lastUpdatedAt"`
}
