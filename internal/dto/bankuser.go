package dto

import (
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
)

// CreateBankUserRequest registers a staff login. The plaintext password is
// hashed before it reaches storage.
type CreateBankUserRequest struct {
	BranchID string              `json:"branchID" binding:"required,max=10"`
	Username string              `json:"username" binding:"required,min=3,max=50"`
	Password string              `json:"password" binding:"required,min=8,max=72"`
	Role     domain.BankUserRole `json:"role" binding:"required,oneof=TELLER MANAGER ADMIN"`
}

// UpdateBankUserRequest replaces a staff login's branch assignment, role
// and active flag. Password changes stay out of this request; they would
// need their own verified endpoint.
type UpdateBankUserRequest struct {
	BranchID string              `json:"branchID" binding:"required,max=10"`
	Role     domain.BankUserRole `json:"role" binding:"required,oneof=TELLER MANAGER ADMIN"`
	IsActive *bool               `json:"isActive" binding:"required"`
}

// LoginRequest authenticates a staff user.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token for subsequent requests.
type LoginResponse struct {
	Token string           `json:"token"`
	User  BankUserResponse `json:"user"`
}

// BankUserResponse mirrors domain.BankUser without the password hash.
type BankUserResponse struct {
	UserID       int64               `json:"userID"`
	BranchID     string              `json:"branchID"`
	Username     string              `json:"username"`
	Role         domain.BankUserRole `json:"role"`
	IsActive     bool                `json:"isActive"`
	LastLoggedIn *time.Time          `json:"lastLoggedIn,omitempty"`
	CreatedOn    time.Time           `json:"createdOn"`
}

// ToBankUserResponse converts a domain.BankUser to its response DTO.
func ToBankUserResponse(u *domain.BankUser) BankUserResponse {
	return BankUserResponse{
		UserID:       u.UserID,
		BranchID:     u.BranchID,
		Username:     u.Username,
		Role:         u.Role,
		IsActive:     u.IsActive,
		LastLoggedIn: u.LastLoggedIn,
		CreatedOn:    u.CreatedOn,
	}
}
