package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	portssvc "github.com/SscSPs/flymarket_pos/internal/core/ports/services"
	"github.com/SscSPs/flymarket_pos/internal/middleware"
	"github.com/SscSPs/flymarket_pos/internal/platform/config"
	"github.com/SscSPs/flymarket_pos/internal/utils"
)

// authService issues access tokens to crew operators that present the terminal PIN.
type authService struct {
	cfg *config.Config
	now func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg, now: time.Now}
}

func (s *authService) Login(ctx context.Context, operatorID string, pin string) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" || pin == "" {
		return "", time.Time{}, fmt.Errorf("%w: operator ID and PIN are required", apperrors.ErrValidation)
	}
	if s.cfg.OperatorPINHash == "" {
		logger.Error("Login attempted but no operator PIN hash is configured")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	if !utils.CheckPIN(pin, s.cfg.OperatorPINHash) {
		logger.Warn("Operator login rejected", slog.String("operator_id", operatorID))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(operatorID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.now())
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.Info("Operator logged in", slog.String("operator_id", operatorID))
	return token, expiresAt, nil
}
