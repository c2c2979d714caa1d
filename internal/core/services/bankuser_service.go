package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	portsrepo "github.com/Ritesh9568/core-banking-api/internal/core/ports/repositories"
	portssvc "github.com/Ritesh9568/core-banking-api/internal/core/ports/services"
	"github.com/Ritesh9568/core-banking-api/internal/dto"
	"github.com/Ritesh9568/core-banking-api/internal/middleware"
	"github.com/Ritesh9568/core-banking-api/internal/platform/config"
	"github.com/Ritesh9568/core-banking-api/internal/utils"
)

// ErrInvalidCredentials is returned for a bad username or password. The two
// cases are not distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

type bankUserService struct {
	cfg          *config.Config
	bankUserRepo portsrepo.BankUserRepositoryFacade
	branchRepo   portsrepo.BranchRepositoryFacade
}

// NewBankUserService creates a new BankUserService.
func NewBankUserService(cfg *config.Config, bankUserRepo portsrepo.BankUserRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade) portssvc.BankUserSvcFacade {
	return &bankUserService{
		cfg:          cfg,
		bankUserRepo: bankUserRepo,
		branchRepo:   branchRepo,
	}
}

var _ portssvc.BankUserSvcFacade = (*bankUserService)(nil)

// CreateBankUser registers a staff login. The plaintext password is hashed
// with bcrypt before storage and never logged.
func (s *bankUserService) CreateBankUser(ctx context.Context, req dto.CreateBankUserRequest) (*domain.BankUser, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.branchRepo.FindBranchByID(ctx, req.BranchID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: branch %s", apperrors.ErrNotFound, req.BranchID)
		}
		return nil, fmt.Errorf("failed to fetch branch: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.BankUser{
		BranchID:     req.BranchID,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
		CreatedOn:    time.Now().UTC(),
	}

	userID, err := s.bankUserRepo.SaveBankUser(ctx, user)
	if err != nil {
		logger.Error("Failed to create bank user", slog.String("username", req.Username), slog.String("error", err.Error()))
		return nil, err
	}
	user.UserID = userID

	logger.Info("Bank user created", slog.Int64("user_id", userID), slog.String("username", user.Username), slog.String("role", string(user.Role)))
	return &user, nil
}

// GetBankUserByID retrieves a staff login.
func (s *bankUserService) GetBankUserByID(ctx context.Context, userID int64) (*domain.BankUser, error) {
	return s.bankUserRepo.FindBankUserByID(ctx, userID)
}

// ListBankUsers retrieves a paginated list of staff logins.
func (s *bankUserService) ListBankUsers(ctx context.Context, limit int, offset int) ([]domain.BankUser, error) {
	return s.bankUserRepo.ListBankUsers(ctx, limit, offset)
}

// UpdateBankUser replaces a staff login's branch assignment, role and
// active flag. The target branch must exist.
func (s *bankUserService) UpdateBankUser(ctx context.Context, userID int64, req dto.UpdateBankUserRequest) (*domain.BankUser, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.bankUserRepo.FindBankUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.branchRepo.FindBranchByID(ctx, req.BranchID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: branch %s", apperrors.ErrNotFound, req.BranchID)
		}
		return nil, fmt.Errorf("failed to fetch branch: %w", err)
	}

	user.BranchID = req.BranchID
	user.Role = req.Role
	user.IsActive = *req.IsActive

	if err := s.bankUserRepo.UpdateBankUser(ctx, *user); err != nil {
		logger.Error("Failed to update bank user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Bank user updated", slog.Int64("user_id", userID), slog.String("role", string(user.Role)))
	return user, nil
}

// DeactivateBankUser marks a staff login inactive.
func (s *bankUserService) DeactivateBankUser(ctx context.Context, userID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.bankUserRepo.DeactivateBankUser(ctx, userID); err != nil {
		return err
	}

	logger.Info("Bank user deactivated", slog.Int64("user_id", userID))
	return nil
}

// Authenticate verifies credentials and returns a signed JWT on success.
// Lookup failure and password mismatch both map to ErrInvalidCredentials.
func (s *bankUserService) Authenticate(ctx context.Context, username, password string) (string, *domain.BankUser, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.bankUserRepo.FindBankUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		logger.Error("Failed to fetch bank user for login", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to fetch bank user: %w", err)
	}

	if !user.IsActive {
		logger.Warn("Login attempt for inactive bank user", slog.Int64("user_id", user.UserID))
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login attempt with wrong password", slog.Int64("user_id", user.UserID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(strconv.FormatInt(user.UserID, 10), string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.Int64("user_id", user.UserID), slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.bankUserRepo.TouchLastLogin(ctx, user.UserID); err != nil {
		// The login itself succeeded; the stamp is best effort.
		logger.Warn("Failed to record login time", slog.Int64("user_id", user.UserID), slog.String("error", err.Error()))
	}

	logger.Info("Bank user authenticated", slog.Int64("user_id", user.UserID))
	return token, user, nil
}
