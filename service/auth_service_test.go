// api/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testify_mock "github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
	api_mock "github.com/solistore/gateway/api/test/mock"
)

func newTestUser(t *testing.T, password string, active bool) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:             42,
		Name:           "Alice",
		Email:          "alice@example.com",
		HashedPassword: string(hashed),
		IsActive:       active,
	}
}

func setupAuthTest(t *testing.T, mode string) (*AuthService, *TokenService, *api_mock.MockUserStore, *api_mock.MockIdentityClient) {
	t.Helper()
	tokens, _ := setupTokenTest(t)

	viper.Set("auth.mode", mode)
	viper.Set("jwt.revokeOnRefresh", true)

	users := new(api_mock.MockUserStore)
	identity := new(api_mock.MockIdentityClient)
	return NewAuthService(tokens, users, identity, nil), tokens, users, identity
}

func TestLoginIssuesPair(t *testing.T) {
	svc, tokens, users, _ := setupAuthTest(t, "local")
	user := newTestUser(t, "s3cret-pass", true)
	users.On("GetUserByEmail", testify_mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), user.Email, "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	access, err := tokens.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, AccessToken, access.Kind)

	refresh, err := tokens.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, refresh.Kind)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, users, _ := setupAuthTest(t, "local")
	user := newTestUser(t, "s3cret-pass", true)
	users.On("GetUserByEmail", testify_mock.Anything, user.Email).Return(user, nil)
	users.On("GetUserByEmail", testify_mock.Anything, "nobody@example.com").Return(nil, gw_errors.ErrUserNotFound)

	// Wrong password and unknown account must be indistinguishable.
	_, wrongPass := svc.Login(context.Background(), user.Email, "wrong-pass")
	_, unknown := svc.Login(context.Background(), "nobody@example.com", "wrong-pass")
	assert.ErrorIs(t, wrongPass, gw_errors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, gw_errors.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, _, users, _ := setupAuthTest(t, "local")
	user := newTestUser(t, "s3cret-pass", false)
	users.On("GetUserByEmail", testify_mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), user.Email, "s3cret-pass")
	assert.ErrorIs(t, err, gw_errors.ErrInactiveAccount)
}

func TestFederatedLoginOutage(t *testing.T) {
	svc, _, _, identity := setupAuthTest(t, "odoo")
	identity.On("Authenticate", testify_mock.Anything, "alice", "pw").
		Return(uint(0), errors.New("connection refused"))

	_, err := svc.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, gw_errors.ErrIdentityUnavailable)
}

func TestFederatedLoginRejection(t *testing.T) {
	svc, _, _, identity := setupAuthTest(t, "odoo")
	identity.On("Authenticate", testify_mock.Anything, "alice", "pw").Return(uint(0), nil)

	_, err := svc.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, gw_errors.ErrInvalidCredentials)
}

func TestFederatedLoginCarriesUID(t *testing.T) {
	svc, _, _, identity := setupAuthTest(t, "odoo")
	identity.On("Authenticate", testify_mock.Anything, "alice", "pw").Return(uint(17), nil)

	pair, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, uint(17), pair.UID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, tokens, _, _ := setupAuthTest(t, "local")

	access, err := tokens.Issue(42, AccessToken)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, gw_errors.ErrInvalidToken)
}

func TestRefreshRotatesAndRevokesOldToken(t *testing.T) {
	svc, tokens, users, _ := setupAuthTest(t, "local")
	user := newTestUser(t, "s3cret-pass", true)
	users.On("GetUserByID", testify_mock.Anything, user.ID).Return(user, nil)

	old, err := tokens.Issue(user.ID, RefreshToken)
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), old)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// Rotation: the presented refresh token is spent.
	assert.True(t, tokens.IsRevoked(context.Background(), old))
	_, err = svc.Refresh(context.Background(), old)
	assert.ErrorIs(t, err, gw_errors.ErrTokenRevoked)
}

func TestRefreshDeniedForInactiveAccount(t *testing.T) {
	svc, tokens, users, _ := setupAuthTest(t, "local")
	user := newTestUser(t, "s3cret-pass", false)
	users.On("GetUserByID", testify_mock.Anything, user.ID).Return(user, nil)

	refresh, err := tokens.Issue(user.ID, RefreshToken)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, gw_errors.ErrInactiveAccount)
}

func TestRefreshDeniedForDeletedAccount(t *testing.T) {
	svc, tokens, users, _ := setupAuthTest(t, "local")
	users.On("GetUserByID", testify_mock.Anything, uint(42)).Return(nil, gw_errors.ErrUserNotFound)

	refresh, err := tokens.Issue(42, RefreshToken)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, gw_errors.ErrPrincipalNotFound)
}

func TestLogoutRevokesPresentedTokenOnly(t *testing.T) {
	svc, tokens, users, _ := setupAuthTest(t, "local")
	user := newTestUser(t, "s3cret-pass", true)
	users.On("GetUserByID", testify_mock.Anything, user.ID).Return(user, nil)

	first, err := tokens.Issue(user.ID, AccessToken)
	require.NoError(t, err)
	second, err := tokens.Issue(user.ID, RefreshToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), first))

	_, err = svc.ResolvePrincipal(context.Background(), first)
	assert.ErrorIs(t, err, gw_errors.ErrTokenRevoked)

	principal, err := svc.ResolvePrincipal(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.ID())
}

func TestResolvePrincipalFederated(t *testing.T) {
	svc, tokens, _, identity := setupAuthTest(t, "odoo")
	identity.On("GetUserInfo", testify_mock.Anything, uint(17)).Return(map[string]any{
		"name":  "Administrator",
		"login": "admin",
	}, nil)

	token, err := tokens.Issue(17, AccessToken)
	require.NoError(t, err)

	principal, err := svc.ResolvePrincipal(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(17), principal.ID())
	assert.True(t, principal.IsElevated())
}

func TestResolvePrincipalFederatedGone(t *testing.T) {
	svc, tokens, _, identity := setupAuthTest(t, "odoo")
	identity.On("GetUserInfo", testify_mock.Anything, uint(17)).Return(nil, nil)

	token, err := tokens.Issue(17, AccessToken)
	require.NoError(t, err)

	_, err = svc.ResolvePrincipal(context.Background(), token)
	assert.ErrorIs(t, err, gw_errors.ErrPrincipalNotFound)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _, users, _ := setupAuthTest(t, "local")

	var stored *model.User
	users.On("CreateUser", testify_mock.Anything, testify_mock.Anything).
		Run(func(args testify_mock.Arguments) {
			stored = args.Get(1).(*model.User)
		}).
		Return(&model.User{ID: 1}, nil)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "bob@example.com",
		Name:     "Bob",
		Password: "longenoughpw",
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.NotEqual(t, "longenoughpw", stored.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("longenoughpw")))
	assert.True(t, stored.IsActive)
}
