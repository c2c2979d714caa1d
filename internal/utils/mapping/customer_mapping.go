package mapping

import (
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/Ritesh9568/core-banking-api/internal/models"
)

func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:    d.CustomerID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		DateOfBirth:   d.DateOfBirth,
		Address:       d.Address,
		MobileNumber:  d.MobileNumber,
		IsActive:      d.IsActive,
		KYCStatus:     string(d.KYCStatus),
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:    m.CustomerID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DateOfBirth:   m.DateOfBirth,
		Address:       m.Address,
		MobileNumber:  m.MobileNumber,
		IsActive:      m.IsActive,
		KYCStatus:     domain.KYCStatus(m.KYCStatus),
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

func ToModelBranch(d domain.Branch) models.Branch {
	return models.Branch{
		BranchID:      d.BranchID,
		BranchName:    d.BranchName,
		IFSCCode:      d.IFSCCode,
		City:          d.City,
		Country:       d.Country,
		DateOpened:    d.DateOpened,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

func ToDomainBranch(m models.Branch) domain.Branch {
	return domain.Branch{
		BranchID:      m.BranchID,
		BranchName:    m.BranchName,
		IFSCCode:      m.IFSCCode,
		City:          m.City,
		Country:       m.Country,
		DateOpened:    m.DateOpened,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

func ToDomainBankUser(m models.BankUser) domain.BankUser {
	return domain.BankUser{
		UserID:       m.UserID,
		BranchID:     m.BranchID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.BankUserRole(m.Role),
		IsActive:     m.IsActive,
		LastLoggedIn: m.LastLoggedIn,
		CreatedOn:    m.CreatedOn,
	}
}

func ToDomainBeneficiary(m models.Beneficiary) domain.Beneficiary {
	return domain.Beneficiary{
		BeneficiaryID:        m.BeneficiaryID,
		CustomerID:           m.CustomerID,
		BeneficiaryName:      m.BeneficiaryName,
		BeneficiaryAccountNo: m.BeneficiaryAccountNo,
		BeneficiaryIFSC:      m.BeneficiaryIFSC,
		AddedOn:              m.AddedOn,
	}
}
