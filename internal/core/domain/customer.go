package domain

import "time"

// KYCStatus tracks the verification state of a customer record.
type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCVerified KYCStatus = "VERIFIED"
	KYCRejected KYCStatus = "REJECTED"
)

// Customer is an account owner. The ledger engine reads this relationship
// only through the account's CustomerID; customer management itself is plain
// record keeping.
type Customer struct {
	CustomerID    string     `json:"customerID"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	DateOfBirth   time.Time  `json:"dateOfBirth"`
	Address       string     `json:"address"`
	MobileNumber  string     `json:"mobileNumber"`
	IsActive      bool       `json:"isActive"`
	KYCStatus     KYCStatus  `json:"kycStatus"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
}
