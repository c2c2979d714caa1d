package dto

import (
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
)

// CreateCustomerRequest registers a new customer. New records start with a
// PENDING KYC status.
type CreateCustomerRequest struct {
	CustomerID   string    `json:"customerID" binding:"required,max=15"`
	FirstName    string    `json:"firstName" binding:"required,max=100"`
	LastName     string    `json:"lastName" binding:"required,max=100"`
	DateOfBirth  time.Time `json:"dateOfBirth" binding:"required"`
	Address      string    `json:"address" binding:"required,max=255"`
	MobileNumber string    `json:"mobileNumber" binding:"required,max=15"`
}

// UpdateCustomerRequest carries the mutable customer fields.
type UpdateCustomerRequest struct {
	FirstName    string           `json:"firstName" binding:"required,max=100"`
	LastName     string           `json:"lastName" binding:"required,max=100"`
	Address      string           `json:"address" binding:"required,max=255"`
	MobileNumber string           `json:"mobileNumber" binding:"required,max=15"`
	KYCStatus    domain.KYCStatus `json:"kycStatus" binding:"required,oneof=PENDING VERIFIED REJECTED"`
}
