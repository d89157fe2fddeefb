package service

import (
	"context"
	"time"

	"planner-api/core/config"
	"planner-api/core/errors"
	"planner-api/core/logger"
	"planner-api/core/utils"
	"planner-api/modules/auth/dto"

	"golang.org/x/crypto/bcrypt"
)

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
}

// AuthService verifies the configured single-user credentials and issues
// JWT session tokens.
type AuthService struct {
	cfg config.AuthConfig
}

func NewAuthService(cfg config.AuthConfig) AuthServiceInterface {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	if req.Username == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "username and password are required", nil)
	}

	if req.Username != s.cfg.Username {
		logger.Warn("AuthService:Login:UnknownUser", "username", req.Username)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("AuthService:Login:BadPassword", "username", req.Username)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid credentials", nil)
	}

	ttl := time.Duration(s.cfg.TokenTTLMin) * time.Minute
	token, err := utils.GenerateToken(req.Username, s.cfg.JWTSecret, ttl)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(ttl.Seconds()),
	}, nil
}
