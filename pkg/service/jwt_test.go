package service

import (
	"testing"
	"time"

	apperrors "turftrack/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() JWTService {
	return NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()

	access, refresh, err := svc.GenerateTokens(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), accessClaims.UserID)
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), refreshClaims.UserID)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	access, _, err := newTestJWTService().GenerateTokens(42)
	require.NoError(t, err)

	other := NewJWTService("different-secret", time.Minute, time.Hour, zap.NewNop())
	_, err = other.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, time.Hour, zap.NewNop())

	access, _, err := svc.GenerateTokens(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := newTestJWTService().ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_TTLAccessors(t *testing.T) {
	svc := newTestJWTService()
	assert.Equal(t, time.Minute, svc.GetAccessTokenTTL())
	assert.Equal(t, time.Hour, svc.GetRefreshTokenTTL())
}
