package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionHistoryEntry is a ledger entry joined with its account's type,
// as shown in transaction history listings.
type TransactionHistoryEntry struct {
	TransactionID   int64             `json:"transactionID"`
	ReferenceNumber string            `json:"referenceNumber"`
	Amount          decimal.Decimal   `json:"amount"`
	TransactionType TransactionType   `json:"transactionType"`
	Timestamp       time.Time         `json:"timestamp"`
	Status          TransactionStatus `json:"status"`
	AccountNumber   string            `json:"accountNumber"`
	AccountType     AccountType       `json:"accountType"`
}

// AccountSummary joins an account with its owning customer for reports.
type AccountSummary struct {
	AccountNumber    string          `json:"accountNumber"`
	AccountType      AccountType     `json:"accountType"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	CustomerFullName string          `json:"customerFullName"`
	CustomerMobileNo string          `json:"customerMobileNo"`
}

// TransactionReportRow is a ledger entry projected with its account's
// number and type for the bank-wide transaction report.
type TransactionReportRow struct {
	Timestamp     time.Time       `json:"timestamp"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   AccountType     `json:"accountType"`
	Amount        decimal.Decimal `json:"amount"`
}

// BeneficiaryReportRow pairs a saved payee with the owning customer's
// first account, when the customer has one, so staff can see which
// account transfers to the payee would originate from.
type BeneficiaryReportRow struct {
	BeneficiaryID            int64        `json:"beneficiaryID"`
	Nickname                 string       `json:"nickname"`
	ExternalAccountNumber    string       `json:"externalAccountNumber"`
	OriginatingAccountNumber *string      `json:"originatingAccountNumber"`
	OriginatingAccountType   *AccountType `json:"originatingAccountType"`
}

// BankUserSummary joins a staff login with its branch for reports.
type BankUserSummary struct {
	UserID     int64        `json:"userID"`
	Username   string       `json:"username"`
	Role       BankUserRole `json:"role"`
	IsActive   bool         `json:"isActive"`
	BranchID   string       `json:"branchID"`
	BranchName string       `json:"branchName"`
	IFSCCode   string       `json:"ifscCode"`
	BranchCity string       `json:"branchCity"`
}
