package domain

import "time"

// Branch is a physical bank branch.
type Branch struct {
	BranchID      string     `json:"branchID"`
	BranchName    string     `json:"branchName"`
	IFSCCode      string     `json:"ifscCode"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	DateOpened    time.Time  `json:"dateOpened"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
}
