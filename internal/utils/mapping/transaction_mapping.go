package mapping

import (
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/Ritesh9568/core-banking-api/internal/models"
)

// ToModelTransaction converts a domain ledger entry to its DB representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		ReferenceNumber: d.ReferenceNumber,
		AccountNumber:   d.AccountNumber,
		TransactionType: string(d.TransactionType),
		Amount:          d.Amount,
		Timestamp:       d.Timestamp,
		Status:          string(d.Status),
		LastUpdatedAt:   d.LastUpdatedAt,
	}
}

// ToDomainTransaction converts a DB ledger row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		ReferenceNumber: m.ReferenceNumber,
		AccountNumber:   m.AccountNumber,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Timestamp:       m.Timestamp,
		Status:          domain.TransactionStatus(m.Status),
		LastUpdatedAt:   m.LastUpdatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of DB ledger rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
