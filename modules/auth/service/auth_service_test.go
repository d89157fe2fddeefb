package service

import (
	"context"
	"testing"

	"planner-api/core/config"
	"planner-api/core/errors"
	"planner-api/core/utils"
	"planner-api/modules/auth/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) AuthServiceInterface {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(config.AuthConfig{
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		TokenTTLMin:  60,
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("should issue a verifiable token for valid credentials", func(t *testing.T) {
		svc := newAuthService(t)

		resp, appErr := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "hunter2"})
		require.Nil(t, appErr)

		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims, err := utils.ParseToken(resp.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		svc := newAuthService(t)

		_, appErr := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "hunter3"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	})

	t.Run("should reject an unknown user", func(t *testing.T) {
		svc := newAuthService(t)

		_, appErr := svc.Login(ctx, &dto.LoginRequest{Username: "root", Password: "hunter2"})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
	})

	t.Run("should reject missing credentials", func(t *testing.T) {
		svc := newAuthService(t)

		_, appErr := svc.Login(ctx, &dto.LoginRequest{})
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})
}
