// api/service/token_service.go
package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/solistore/gateway/api/db"
	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
)

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// TokenClaims is the signed payload carried by every session token.
type TokenClaims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"kind"`
}

// SubjectID returns the principal id encoded in the subject claim.
func (c *TokenClaims) SubjectID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, gw_errors.ErrInvalidToken
	}
	return uint(id), nil
}

// ITokenService issues, verifies and revokes signed session tokens. Issue and
// Verify are pure; revocation state lives in the cache store.
type ITokenService interface {
	Issue(subjectID uint, kind TokenKind) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
	Revoke(ctx context.Context, tokenString string) error
	IsRevoked(ctx context.Context, tokenString string) bool
}

type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

var _ ITokenService = &TokenService{}

func NewTokenService() *TokenService {
	return &TokenService{
		secret:     []byte(viper.GetString("jwt.secret")),
		accessTTL:  viper.GetDuration("jwt.accessTTL"),
		refreshTTL: viper.GetDuration("jwt.refreshTTL"),
	}
}

// Issue creates a signed token of the given kind for the subject. Access and
// refresh lifetimes come from configuration.
func (s *TokenService) Issue(subjectID uint, kind TokenKind) (string, error) {
	ttl := s.accessTTL
	if kind == RefreshToken {
		ttl = s.refreshTTL
	}

	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(subjectID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. Malformed, tampered and expired
// tokens all collapse to ErrInvalidToken; revocation is a separate check.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, gw_errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.ExpiresAt == nil {
		return nil, gw_errors.ErrInvalidToken
	}
	return claims, nil
}

// Revoke writes a revocation marker whose TTL equals the token's remaining
// lifetime, so the marker self-expires exactly when the token would anyway
// become invalid. Revoking an already expired or invalid token is a no-op.
func (s *TokenService) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := db.SetCache(ctx, revocationKey(tokenString), "revoked", remaining); err != nil {
		return fmt.Errorf("failed to record revocation: %w", err)
	}
	logger.Info("Token revoked",
		zap.String("subject", claims.Subject),
		zap.String("kind", string(claims.Kind)),
		zap.Duration("remaining", remaining))
	return nil
}

// IsRevoked reports whether the token carries a revocation marker. A cache
// store outage is treated as "not revoked": locking out every user because the
// revocation list is briefly unreachable is the worse failure, so availability
// wins over strictness here. The degradation is logged, never swallowed.
func (s *TokenService) IsRevoked(ctx context.Context, tokenString string) bool {
	_, found, err := db.GetCache(ctx, revocationKey(tokenString))
	if err != nil {
		logger.Warn("Revocation list unreachable, failing open", zap.Error(err))
		return false
	}
	return found
}

// revocationKey hashes the token so the raw credential never appears in the
// cache store or its logs.
func revocationKey(tokenString string) string {
	return fmt.Sprintf("revoked:%x", sha256.Sum256([]byte(tokenString)))
}
