package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "ledger-api", time.Minute, time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "a@example.com", []string{"admin"}, []string{"view-reports"})
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"view-reports"}, claims.Permissions)
}

func TestJWTManager_RejectsForeignIssuer(t *testing.T) {
	issuer := NewJWTManager("secret", "other", time.Minute, time.Hour)
	m := NewJWTManager("secret", "ledger-api", time.Minute, time.Hour)

	token, err := issuer.GenerateAccessToken(uuid.New(), "a@example.com", nil, nil)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", "ledger-api", -time.Minute, -time.Minute)

	token, err := m.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "ledger-api", time.Minute, time.Hour)
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestDocumentNumber(t *testing.T) {
	assert.Equal(t, "QT-000042", DocumentNumber(QuotePrefix, 42))
	assert.Equal(t, "INV-000001", DocumentNumber(InvoicePrefix, 0))
	assert.Equal(t, "INV-1234567", DocumentNumber(InvoicePrefix, 1234567))
}
