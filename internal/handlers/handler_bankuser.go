package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/Ritesh9568/core-banking-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankUserHandler handles HTTP requests related to staff logins.
type bankUserHandler struct {
	bankUserService portssvc.BankUserSvcFacade
}

// newBankUserHandler creates a new bankUserHandler.
func newBankUserHandler(bs portssvc.BankUserSvcFacade) *bankUserHandler {
	return &bankUserHandler{
		bankUserService: bs,
	}
}

// registerBankUserRoutes registers all staff login management routes.
// Management is restricted to ADMIN.
func registerBankUserRoutes(rg *gin.RouterGroup, bankUserService portssvc.BankUserSvcFacade) {
	h := newBankUserHandler(bankUserService)

	users := rg.Group("/users", middleware.RequireRole(string(domain.RoleAdmin)))
	{
		users.POST("", h.createBankUser)
		users.GET("", h.listBankUsers)
		users.GET("/:id", h.getBankUser)
		users.PUT("/:id", h.updateBankUser)
		users.DELETE("/:id", h.deactivateBankUser)
	}
}

// createBankUser godoc
// @Summary Register a staff login
// @Description Creates a staff user; the password is stored as a bcrypt hash
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateBankUserRequest true "User details"
// @Success 201 {object} dto.BankUserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *bankUserHandler) createBankUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBankUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create bank user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.bankUserService.CreateBankUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankUserResponse(user))
}

// getBankUser godoc
// @Summary Get a staff login
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} dto.BankUserResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *bankUserHandler) getBankUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	user, err := h.bankUserService.GetBankUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBankUserResponse(user))
}

// listBankUsers godoc
// @Summary List staff logins
// @Tags users
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.BankUserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *bankUserHandler) listBankUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.bankUserService.ListBankUsers(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	responses := make([]dto.BankUserResponse, len(users))
	for i := range users {
		responses[i] = dto.ToBankUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}

// updateBankUser godoc
// @Summary Update a staff login
// @Description Replaces the user's branch assignment, role and active flag
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   user body dto.UpdateBankUserRequest true "Updated details"
// @Success 200 {object} dto.BankUserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "User or branch not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *bankUserHandler) updateBankUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	var req dto.UpdateBankUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update bank user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.bankUserService.UpdateBankUser(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBankUserResponse(user))
}

// deactivateBankUser godoc
// @Summary Deactivate a staff login
// @Tags users
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *bankUserHandler) deactivateBankUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	// An admin cannot lock themselves out of the system.
	if actor, ok := middleware.GetUserIDFromContext(c); ok && actor == c.Param("id") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot deactivate your own account"})
		return
	}

	if err := h.bankUserService.DeactivateBankUser(c.Request.Context(), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
