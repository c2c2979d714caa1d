package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/Ritesh9568/core-banking-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// beneficiaryHandler handles HTTP requests related to saved payees.
type beneficiaryHandler struct {
	beneficiaryService portssvc.BeneficiarySvcFacade
}

// newBeneficiaryHandler creates a new beneficiaryHandler.
func newBeneficiaryHandler(bs portssvc.BeneficiarySvcFacade) *beneficiaryHandler {
	return &beneficiaryHandler{
		beneficiaryService: bs,
	}
}

// registerBeneficiaryRoutes registers all beneficiary-related routes.
func registerBeneficiaryRoutes(rg *gin.RouterGroup, beneficiaryService portssvc.BeneficiarySvcFacade) {
	h := newBeneficiaryHandler(beneficiaryService)

	beneficiaries := rg.Group("/beneficiaries")
	{
		beneficiaries.POST("", h.addBeneficiary)
		beneficiaries.GET("", h.listBeneficiaries)
		beneficiaries.GET("/:id", h.getBeneficiary)
		beneficiaries.PUT("/:id", h.updateBeneficiary)
		beneficiaries.DELETE("/:id", h.removeBeneficiary)
	}
}

// addBeneficiary godoc
// @Summary Save a payee
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   beneficiary body dto.AddBeneficiaryRequest true "Payee details"
// @Success 201 {object} domain.Beneficiary
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /beneficiaries [post]
func (h *beneficiaryHandler) addBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for add beneficiary request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	beneficiary, err := h.beneficiaryService.AddBeneficiary(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, beneficiary)
}

// getBeneficiary godoc
// @Summary Get a payee
// @Tags beneficiaries
// @Produce  json
// @Param   id path int true "Beneficiary ID"
// @Success 200 {object} domain.Beneficiary
// @Failure 404 {object} ErrorResponse "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{id} [get]
func (h *beneficiaryHandler) getBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	beneficiaryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid beneficiary ID"})
		return
	}

	beneficiary, err := h.beneficiaryService.GetBeneficiaryByID(c.Request.Context(), beneficiaryID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, beneficiary)
}

// listBeneficiaries godoc
// @Summary List a customer's payees
// @Tags beneficiaries
// @Produce  json
// @Param   customerID query string true "Customer ID"
// @Success 200 {array} domain.Beneficiary
// @Failure 400 {object} ErrorResponse "Missing customerID"
// @Security BearerAuth
// @Router /beneficiaries [get]
func (h *beneficiaryHandler) listBeneficiaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID := c.Query("customerID")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "customerID query parameter is required"})
		return
	}

	beneficiaries, err := h.beneficiaryService.ListBeneficiariesByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, beneficiaries)
}

// updateBeneficiary godoc
// @Summary Update a payee
// @Description Replaces the payee's name, account number and IFSC
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   id path int true "Beneficiary ID"
// @Param   beneficiary body dto.UpdateBeneficiaryRequest true "Updated details"
// @Success 200 {object} domain.Beneficiary
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{id} [put]
func (h *beneficiaryHandler) updateBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	beneficiaryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid beneficiary ID"})
		return
	}

	var req dto.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update beneficiary request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	beneficiary, err := h.beneficiaryService.UpdateBeneficiary(c.Request.Context(), beneficiaryID, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, beneficiary)
}

// removeBeneficiary godoc
// @Summary Remove a payee
// @Tags beneficiaries
// @Produce  json
// @Param   id path int true "Beneficiary ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{id} [delete]
func (h *beneficiaryHandler) removeBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	beneficiaryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid beneficiary ID"})
		return
	}

	if err := h.beneficiaryService.RemoveBeneficiary(c.Request.Context(), beneficiaryID); err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Beneficiary removed"})
}
