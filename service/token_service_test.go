// api/service/token_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solistore/gateway/api/db"
	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
)

func setupTokenTest(t *testing.T) (*TokenService, *miniredis.Miniredis) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	mr := miniredis.RunT(t)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	viper.Set("jwt.secret", "test-signing-secret")
	viper.Set("jwt.accessTTL", "30m")
	viper.Set("jwt.refreshTTL", "168h")

	return NewTokenService(), mr
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	svc, _ := setupTokenTest(t)

	token, err := svc.Issue(42, AccessToken)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, AccessToken, claims.Kind)

	subjectID, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), subjectID)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc, _ := setupTokenTest(t)

	token, err := svc.Issue(7, AccessToken)
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	assert.ErrorIs(t, err, gw_errors.ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc, _ := setupTokenTest(t)

	other := &TokenService{
		secret:     []byte("a-different-secret"),
		accessTTL:  time.Minute,
		refreshTTL: time.Hour,
	}
	token, err := other.Issue(7, AccessToken)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, gw_errors.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc, _ := setupTokenTest(t)

	expired := &TokenService{
		secret:     svc.secret,
		accessTTL:  -time.Minute,
		refreshTTL: -time.Minute,
	}
	token, err := expired.Issue(7, AccessToken)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, gw_errors.ErrInvalidToken)
}

func TestRevokeMarksTokenUntilExpiry(t *testing.T) {
	svc, mr := setupTokenTest(t)
	ctx := context.Background()

	token, err := svc.Issue(42, RefreshToken)
	require.NoError(t, err)

	assert.False(t, svc.IsRevoked(ctx, token))
	require.NoError(t, svc.Revoke(ctx, token))
	assert.True(t, svc.IsRevoked(ctx, token))

	// The marker self-expires with the token: its TTL tracks the remaining
	// lifetime, here just under the refresh TTL.
	key := revocationKey(token)
	require.True(t, mr.Exists(key))
	ttl := mr.TTL(key)
	assert.Greater(t, ttl, 167*time.Hour)
	assert.LessOrEqual(t, ttl, 168*time.Hour)

	// The raw token must never be stored.
	assert.NotContains(t, key, token)
}

func TestRevokeExpiredTokenIsNoOp(t *testing.T) {
	svc, mr := setupTokenTest(t)

	expired := &TokenService{
		secret:     svc.secret,
		accessTTL:  -time.Minute,
		refreshTTL: -time.Minute,
	}
	token, err := expired.Issue(42, AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), token))
	assert.Empty(t, mr.Keys())
}

func TestIsRevokedFailsOpenOnStoreOutage(t *testing.T) {
	svc, mr := setupTokenTest(t)

	token, err := svc.Issue(42, AccessToken)
	require.NoError(t, err)

	mr.Close()
	assert.False(t, svc.IsRevoked(context.Background(), token))
}
