package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buddybridge/backend/internal/app/models"
	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/pkg/apperrors"
	"github.com/buddybridge/backend/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *mockMemberStore) {
	memberStore := newMockMemberStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "buddybridge-test",
	})
	return NewAuthService(memberStore, jwtService, zerolog.Nop()), memberStore
}

func testRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:          "new@buddybridge.kr",
		Password:       "buddybridge1!",
		Name:           "Lee Jiyoung",
		Nickname:       "jiyoung",
		Age:            22,
		Gender:         models.GenderFemale,
		DisabilityType: models.DisabilityTypeHearing,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	service, memberStore := newTestAuthService()

	id, err := service.Register(ctx, testRegisterRequest())
	require.NoError(t, err)
	require.NotZero(t, id)

	stored := memberStore.members[id]
	require.NotNil(t, stored)
	assert.Equal(t, "new@buddybridge.kr", stored.Email)
	assert.Equal(t, models.DisabilityTypeHearing, stored.DisabilityType)

	// the password is stored as a bcrypt hash, never in the clear
	assert.NotEqual(t, "buddybridge1!", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "buddybridge1!"))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestAuthService()

	_, err := service.Register(ctx, testRegisterRequest())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := service.Login(ctx, &dto.LoginRequest{
			Email:    "new@buddybridge.kr",
			Password: "buddybridge1!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Equal(t, 3600, token.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, &dto.LoginRequest{
			Email:    "new@buddybridge.kr",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(ctx, &dto.LoginRequest{
			Email:    "missing@buddybridge.kr",
			Password: "buddybridge1!",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
