package dto

// CreateBranchRequest registers a new branch.
type CreateBranchRequest struct {
	BranchID   string `json:"branchID" binding:"required,max=10"`
	BranchName string `json:"branchName" binding:"required,max=100"`
	IFSCCode   string `json:"ifscCode" binding:"required,max=11"`
	City       string `json:"city" binding:"required,max=50"`
	Country    string `json:"country" binding:"required,max=50"`
}

// UpdateBranchRequest carries the mutable branch fields.
type UpdateBranchRequest struct {
	BranchName string `json:"branchName" binding:"required,max=100"`
	IFSCCode   string `json:"ifscCode" binding:"required,max=11"`
	City       string `json:"city" binding:"required,max=50"`
	Country    string `json:"country" binding:"required,max=50"`
}
