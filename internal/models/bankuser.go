package models

import "time"

// BankUser mirrors the bank_users table.
type BankUser struct {
	UserID       int64      `db:"user_id"`
	BranchID     string     `db:"branch_id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	LastLoggedIn *time.Time `db:"last_logged_in"`
	CreatedOn    time.Time  `db:"created_on"`
}
