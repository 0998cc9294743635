// api/policy/policy.go

// Package policy holds the authorization decision functions applied after a
// principal has been resolved. Decisions are pure: no I/O, no cache, just the
// principal's capability surface against the required privilege.
package policy

import (
	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
)

// RequireActive denies principals whose account has been deactivated.
func RequireActive(p model.Principal) error {
	if !p.IsActive() {
		return gw_errors.ErrInactiveAccount
	}
	return nil
}

// RequireElevated denies principals without administrative privilege.
func RequireElevated(p model.Principal) error {
	if err := RequireActive(p); err != nil {
		return err
	}
	if !p.IsElevated() {
		return gw_errors.ErrForbidden
	}
	return nil
}

// RequireSelfOrElevated allows a principal to act on its own record, or on any
// record when elevated.
func RequireSelfOrElevated(p model.Principal, targetID uint) error {
	if err := RequireActive(p); err != nil {
		return err
	}
	if p.ID() == targetID || p.IsElevated() {
		return nil
	}
	return gw_errors.ErrForbidden
}
