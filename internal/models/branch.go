package models

import "time"

// Branch mirrors the branches table.
type Branch struct {
	BranchID      string     `db:"branch_id"`
	BranchName    string     `db:"branch_name"`
	IFSCCode      string     `db:"ifsc_code"`
	City          string     `db:"city"`
	Country       string     `db:"country"`
	DateOpened    time.Time  `db:"date_opened"`
	LastUpdatedAt *time.Time `db:"last_updated_at"`
}
