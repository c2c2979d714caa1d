package domain

import "time"

// Beneficiary is a payee a customer has saved for transfers. The ledger
// engine does not consult beneficiaries; they are caller-side convenience.
type Beneficiary struct {
	BeneficiaryID        int64     `json:"beneficiaryID"`
	CustomerID           string    `json:"customerID"` // FK -> customers.customer_id
	BeneficiaryName      string    `json:"beneficiaryName"`
	BeneficiaryAccountNo string    `json:"beneficiaryAccountNo"`
	BeneficiaryIFSC      string    `json:"beneficiaryIFSC"`
	AddedOn              time.Time `json:"addedOn"`
}
