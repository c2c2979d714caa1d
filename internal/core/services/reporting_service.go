package services

import (
	"context"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
)

// reportingService is a thin pass-through over the read-only projections.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) AccountSummaries(ctx context.Context) ([]domain.AccountSummary, error) {
	return s.reportingRepo.AccountSummaries(ctx)
}

func (s *reportingService) BankUserSummaries(ctx context.Context) ([]domain.BankUserSummary, error) {
	return s.reportingRepo.BankUserSummaries(ctx)
}

func (s *reportingService) TransactionReport(ctx context.Context) ([]domain.TransactionReportRow, error) {
	return s.reportingRepo.TransactionReport(ctx)
}

func (s *reportingService) BeneficiaryReport(ctx context.Context) ([]domain.BeneficiaryReportRow, error) {
	return s.reportingRepo.BeneficiaryReport(ctx)
}
