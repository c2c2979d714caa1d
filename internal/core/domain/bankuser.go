package domain

import "time"

// BankUserRole restricts what a staff login may do.
type BankUserRole string

const (
	RoleTeller  BankUserRole = "TELLER"
	RoleManager BankUserRole = "MANAGER"
	RoleAdmin   BankUserRole = "ADMIN"
)

// BankUser is a staff member who authenticates against the API.
// PasswordHash is a bcrypt hash and never leaves the service layer.
type BankUser struct {
	UserID       int64        `json:"userID"`
	BranchID     string       `json:"branchID"` // FK -> branches.branch_id
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	Role         BankUserRole `json:"role"`
	IsActive     bool         `json:"isActive"`
	LastLoggedIn *time.Time   `json:"lastLoggedIn,omitempty"`
	CreatedOn    time.Time    `json:"createdOn"`
}
