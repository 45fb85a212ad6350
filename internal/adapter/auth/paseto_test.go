package auth

import (
	"testing"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/adapter/config"
	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken_RoundTrip(t *testing.T) {
	ts, err := New(nil)
	require.NoError(t, err)

	token, err := ts.CreateToken(port.TokenPayload{ClientID: 7, Role: domain.RoleClient}, time.Hour)
	require.NoError(t, err)

	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), payload.ClientID)
	assert.Equal(t, domain.Actor{ClientID: 7, Role: domain.RoleClient}, payload.Actor())
}

func TestPasetoToken_SharedKey(t *testing.T) {
	first, err := New(nil)
	require.NoError(t, err)

	second, err := New(&config.Auth{Key: first.KeyHex()})
	require.NoError(t, err)

	token, err := first.CreateToken(port.TokenPayload{Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	payload, err := second.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, payload.Role)

	other, err := New(nil)
	require.NoError(t, err)
	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = New(&config.Auth{Key: "zz"})
	assert.Error(t, err)
}

func TestPasetoToken_Expired(t *testing.T) {
	ts, err := New(nil)
	require.NoError(t, err)

	token, err := ts.CreateToken(port.TokenPayload{Role: domain.RoleAdmin}, time.Minute)
	require.NoError(t, err)

	ts.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = ts.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrExpiredToken)
}

func TestPasetoToken_Garbage(t *testing.T) {
	ts, err := New(nil)
	require.NoError(t, err)

	_, err = ts.VerifyToken("v4.local.garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
