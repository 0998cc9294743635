// api/policy/policy_test.go
package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gw_errors "github.com/solistore/gateway/api/errors"
	"github.com/solistore/gateway/api/model"
)

func localPrincipal(id uint, active, superuser bool) model.Principal {
	return model.LocalPrincipal{User: &model.User{
		ID:          id,
		IsActive:    active,
		IsSuperuser: superuser,
	}}
}

func TestRequireActive(t *testing.T) {
	assert.NoError(t, RequireActive(localPrincipal(1, true, false)))
	assert.ErrorIs(t, RequireActive(localPrincipal(1, false, false)), gw_errors.ErrInactiveAccount)
}

func TestRequireElevated(t *testing.T) {
	assert.NoError(t, RequireElevated(localPrincipal(1, true, true)))
	assert.ErrorIs(t, RequireElevated(localPrincipal(1, true, false)), gw_errors.ErrForbidden)

	// Deactivation dominates: an inactive admin is refused as inactive, not
	// let through on privilege.
	assert.ErrorIs(t, RequireElevated(localPrincipal(1, false, true)), gw_errors.ErrInactiveAccount)
}

func TestRequireSelfOrElevated(t *testing.T) {
	tests := []struct {
		name      string
		principal model.Principal
		targetID  uint
		want      error
	}{
		{"self", localPrincipal(1, true, false), 1, nil},
		{"other user", localPrincipal(1, true, false), 2, gw_errors.ErrForbidden},
		{"admin on other user", localPrincipal(1, true, true), 2, nil},
		{"inactive self", localPrincipal(1, false, false), 1, gw_errors.ErrInactiveAccount},
		{"inactive admin", localPrincipal(1, false, true), 2, gw_errors.ErrInactiveAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSelfOrElevated(tt.principal, tt.targetID)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
