package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buddybridge/backend/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "buddybridge-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testJWTService(time.Hour)
	member := &models.Member{ID: 42, Email: "member@buddybridge.kr"}

	token, expiresIn, err := service.GenerateToken(member)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.MemberID)
	assert.Equal(t, "member@buddybridge.kr", claims.Email)
	assert.Equal(t, "buddybridge-test", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateExpiredToken(t *testing.T) {
	service := testJWTService(-time.Minute)
	member := &models.Member{ID: 1, Email: "member@buddybridge.kr"}

	token, _, err := service.GenerateToken(member)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	member := &models.Member{ID: 1, Email: "member@buddybridge.kr"}
	token, _, err := testJWTService(time.Hour).GenerateToken(member)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "buddybridge-test",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	service := testJWTService(time.Hour)
	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	for _, header := range []string{"", "abc123", "bearer abc123", "Basic abc123"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}
}
