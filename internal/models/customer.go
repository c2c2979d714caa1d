package models

import "time"

// Customer mirrors the customers table.
type Customer struct {
	CustomerID    string     `db:"customer_id"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	DateOfBirth   time.Time  `db:"date_of_birth"`
	Address       string     `db:"address"`
	MobileNumber  string     `db:"mobile_number"`
	IsActive      bool       `db:"is_active"`
	KYCStatus     string     `db:"kyc_status"`
	LastUpdatedAt *time.Time `db:"last_updated_at"`
}
