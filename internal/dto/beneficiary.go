package dto

// AddBeneficiaryRequest saves a payee under a customer.
type AddBeneficiaryRequest struct {
	CustomerID           string `json:"customerID" binding:"required,max=15"`
	BeneficiaryName      string `json:"beneficiaryName" binding:"required,max=100"`
	BeneficiaryAccountNo string `json:"beneficiaryAccountNo" binding:"required,max=15"`
	BeneficiaryIFSC      string `json:"beneficiaryIFSC" binding:"required,max=11"`
}

// UpdateBeneficiaryRequest replaces a saved payee's details. The owning
// customer cannot be changed; remove and re-add instead.
type UpdateBeneficiaryRequest struct {
	BeneficiaryName      string `json:"beneficiaryName" binding:"required,max=100"`
	BeneficiaryAccountNo string `json:"beneficiaryAccountNo" binding:"required,max=15"`
	BeneficiaryIFSC      string `json:"beneficiaryIFSC" binding:"required,max=11"`
}
