package handlers

import (
	"net/http"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the read-only reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the reporting routes. Reports are
// restricted to MANAGER and ADMIN.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports", middleware.RequireRole(string(domain.RoleManager), string(domain.RoleAdmin)))
	{
		reports.GET("/accounts", h.accountSummaries)
		reports.GET("/users", h.bankUserSummaries)
		reports.GET("/transactions", h.transactionReport)
		reports.GET("/beneficiaries", h.beneficiaryReport)
	}
}

// accountSummaries godoc
// @Summary Account summary report
// @Description Lists every account joined with its owning customer
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.AccountSummary
// @Security BearerAuth
// @Router /reports/accounts [get]
func (h *reportingHandler) accountSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.reportingService.AccountSummaries(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// bankUserSummaries godoc
// @Summary Staff summary report
// @Description Lists every staff login joined with its branch
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.BankUserSummary
// @Security BearerAuth
// @Router /reports/users [get]
func (h *reportingHandler) bankUserSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.reportingService.BankUserSummaries(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// transactionReport godoc
// @Summary Transaction report
// @Description Lists every ledger entry joined with its account, newest first
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.TransactionReportRow
// @Security BearerAuth
// @Router /reports/transactions [get]
func (h *reportingHandler) transactionReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.TransactionReport(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// beneficiaryReport godoc
// @Summary Beneficiary report
// @Description Lists every saved payee with the owner's first account
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.BeneficiaryReportRow
// @Security BearerAuth
// @Router /reports/beneficiaries [get]
func (h *reportingHandler) beneficiaryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.BeneficiaryReport(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
