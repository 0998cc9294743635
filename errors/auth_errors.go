// api/errors/auth_errors.go
package errors

import "errors"

var (
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrInactiveAccount     = errors.New("inactive account")
	ErrForbidden           = errors.New("not enough permissions")
	ErrPrincipalNotFound   = errors.New("principal no longer exists")
	ErrIdentityUnavailable = errors.New("identity provider unreachable")
)
