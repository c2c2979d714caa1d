package models

import "time"

// Beneficiary mirrors the beneficiaries table.
type Beneficiary struct {
	BeneficiaryID        int64     `db:"beneficiary_id"`
	CustomerID           string    `db:"customer_id"`
	BeneficiaryName      string    `db:"beneficiary_name"`
	BeneficiaryAccountNo string    `db:"beneficiary_account_no"`
	BeneficiaryIFSC      string    `db:"beneficiary_ifsc"`
	AddedOn              time.Time `db:"added_on"`
}
