// api/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/solistore/gateway/api/audit"
	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/odoo"
)

// UserStore is the slice of the persistence layer the resolver needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
}

// IAuthService resolves inbound credentials into principals and manages the
// token lifecycle. A deployment runs exactly one credential flow, selected by
// auth.mode; the resolver supports either but never both at once.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	Logout(ctx context.Context, tokenString string) error
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	ResolvePrincipal(ctx context.Context, tokenString string) (model.Principal, error)
}

type AuthService struct {
	tokens          ITokenService
	users           UserStore
	identity        odoo.IdentityClient
	auditService    audit.Service
	mode            string
	revokeOnRefresh bool
}

var _ IAuthService = &AuthService{}

// bcrypt work performed when the account does not exist, so a login against an
// unknown email costs the same as one against a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func NewAuthService(tokens ITokenService, users UserStore, identity odoo.IdentityClient, auditService audit.Service) *AuthService {
	return &AuthService{
		tokens:          tokens,
		users:           users,
		identity:        identity,
		auditService:    auditService,
		mode:            viper.GetString("auth.mode"),
		revokeOnRefresh: viper.GetBool("jwt.revokeOnRefresh"),
	}
}

// Login verifies credentials and issues an access+refresh pair. Failures are
// uniform: the caller cannot tell a missing account from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.TokenPair, error) {
	if s.mode == "odoo" {
		return s.loginFederated(ctx, email, password)
	}
	return s.loginLocal(ctx, email, password)
}

func (s *AuthService) loginLocal(ctx context.Context, email, password string) (*model.TokenPair, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil || user == nil {
		// Equalize timing with the found-user path.
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		s.recordAuthEvent(ctx, "", "login", false)
		return nil, gw_errors.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		s.recordAuthEvent(ctx, strconv.FormatUint(uint64(user.ID), 10), "login", false)
		return nil, gw_errors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, gw_errors.ErrInactiveAccount
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}
	s.recordAuthEvent(ctx, strconv.FormatUint(uint64(user.ID), 10), "login", true)
	return pair, nil
}

func (s *AuthService) loginFederated(ctx context.Context, login, password string) (*model.TokenPair, error) {
	uid, err := s.identity.Authenticate(ctx, login, password)
	if err != nil {
		return nil, gw_errors.ErrIdentityUnavailable
	}
	if uid == 0 {
		s.recordAuthEvent(ctx, "", "login", false)
		return nil, gw_errors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(uid)
	if err != nil {
		return nil, err
	}
	pair.UID = uid
	s.recordAuthEvent(ctx, strconv.FormatUint(uint64(uid), 10), "login", true)
	return pair, nil
}

// ResolvePrincipal turns a bearer token into a verified principal: signature
// and expiry first, then the revocation list, then the current account state.
func (s *AuthService) ResolvePrincipal(ctx context.Context, tokenString string) (model.Principal, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, gw_errors.ErrInvalidToken
	}
	if s.tokens.IsRevoked(ctx, tokenString) {
		return nil, gw_errors.ErrTokenRevoked
	}

	subjectID, err := claims.SubjectID()
	if err != nil {
		return nil, gw_errors.ErrInvalidToken
	}
	return s.loadPrincipal(ctx, subjectID)
}

func (s *AuthService) loadPrincipal(ctx context.Context, subjectID uint) (model.Principal, error) {
	if s.mode == "odoo" {
		info, err := s.identity.GetUserInfo(ctx, subjectID)
		if err != nil {
			return nil, gw_errors.ErrIdentityUnavailable
		}
		if info == nil {
			return nil, gw_errors.ErrPrincipalNotFound
		}
		return model.NewExternalPrincipal(subjectID, info), nil
	}

	user, err := s.users.GetUserByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gw_errors.ErrUserNotFound) {
			return nil, gw_errors.ErrPrincipalNotFound
		}
		return nil, err
	}
	return model.LocalPrincipal{User: user}, nil
}

// Refresh exchanges a refresh token for a new pair. Access tokens presented
// here are rejected, and a deactivated or deleted principal cannot refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, gw_errors.ErrInvalidToken
	}
	if claims.Kind != RefreshToken {
		return nil, gw_errors.ErrInvalidToken
	}
	if s.tokens.IsRevoked(ctx, refreshToken) {
		return nil, gw_errors.ErrTokenRevoked
	}

	subjectID, err := claims.SubjectID()
	if err != nil {
		return nil, gw_errors.ErrInvalidToken
	}

	principal, err := s.loadPrincipal(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !principal.IsActive() {
		return nil, gw_errors.ErrInactiveAccount
	}

	pair, err := s.issuePair(subjectID)
	if err != nil {
		return nil, err
	}
	if s.mode == "odoo" {
		pair.UID = subjectID
	}

	if s.revokeOnRefresh {
		if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
			logger.Warn("Failed to revoke rotated refresh token", zap.Error(err))
		}
	}

	s.recordAuthEvent(ctx, claims.Subject, "refresh", true)
	return pair, nil
}

// Logout revokes the presented token only. Other tokens issued to the same
// principal stay valid until they expire.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return gw_errors.ErrInvalidToken
	}
	if err := s.tokens.Revoke(ctx, tokenString); err != nil {
		return err
	}
	s.recordAuthEvent(ctx, claims.Subject, "logout", true)
	return nil
}

// Register creates a local account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, gw_errors.ErrInternalServer
	}

	user := &model.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hashed),
		Phone:          req.Phone,
		IsCompany:      req.IsCompany,
		IsActive:       true,
	}
	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.recordAuthEvent(ctx, strconv.FormatUint(uint64(created.ID), 10), "register", true)
	return created, nil
}

func (s *AuthService) issuePair(subjectID uint) (*model.TokenPair, error) {
	access, err := s.tokens.Issue(subjectID, AccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Issue(subjectID, RefreshToken)
	if err != nil {
		return nil, err
	}
	return &model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// recordAuthEvent writes to the audit trail. Audit failures never surface to
// the caller.
func (s *AuthService) recordAuthEvent(ctx context.Context, actorID, action string, success bool) {
	if s.auditService == nil {
		return
	}
	entry := audit.AuditLog{
		ActorID:      actorID,
		Action:       action,
		ResourceType: "session",
		Success:      success,
	}
	if err := s.auditService.Record(ctx, entry); err != nil {
		logger.Warn("Failed to record auth audit entry",
			zap.Error(err),
			zap.String("action", action))
	}
}
