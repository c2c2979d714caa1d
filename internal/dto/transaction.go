package dto

import (
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines a single-account money movement.
// Transfers use the dedicated TransferRequest instead.
type CreateTransactionRequest struct {
	AccountNumber   string                 `json:"accountNumber" binding:"required,max=15"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=DEPOSIT WITHDRAWAL"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
}

// TransferRequest defines an inter-account money movement.
type TransferRequest struct {
	SourceAccountNumber      string          `json:"sourceAccountNumber" binding:"required,max=15"`
	DestinationAccountNumber string          `json:"destinationAccountNumber" binding:"required,max=15"`
	Amount                   decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateTransactionStatusRequest defines a status-only correction.
type UpdateTransactionStatusRequest struct {
	Status domain.TransactionStatus `json:"status" binding:"required,oneof=COMPLETED CANCELLED"`
}

// TransactionResponse mirrors a committed ledger entry.
type TransactionResponse struct {
	TransactionID   int64                    `json:"transactionID"`
	ReferenceNumber string                   `json:"referenceNumber"`
	AccountNumber   string                   `json:"accountNumber"`
	TransactionType domain.TransactionType   `json:"transactionType"`
	Amount          decimal.Decimal          `json:"amount"`
	Timestamp       time.Time                `json:"timestamp"`
	Status          domain.TransactionStatus `json:"status"`
	LastUpdatedAt   time.Time                `json:"lastUpdatedAt"`
}

// TransferResponse is the caller's receipt for a successful transfer.
type TransferResponse struct {
	Message  string `json:"message"`
	DebitRef string `json:"debitReferenceNumber"`
}

// ListTransactionsParams holds query parameters for transaction listings.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of ledger entries, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		ReferenceNumber: txn.ReferenceNumber,
		AccountNumber:   txn.AccountNumber,
		TransactionType: txn.TransactionType,
		Amount:          txn.Amount,
		Timestamp:       txn.Timestamp,
		Status:          txn.Status,
		LastUpdatedAt:   txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
