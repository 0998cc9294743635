// api/odoo/client.go

// Package odoo wraps the ERP's XML-RPC interface. The gateway only needs the
// two identity calls: credential verification and user-info lookup. Both are
// remote and can fail independently of any business logic error; transport
// failures surface as ErrIdentityUnavailable so callers can tell "retry later"
// from "re-authenticate".
package odoo

import (
	"context"
	"fmt"

	"github.com/kolo/xmlrpc"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
)

// IdentityClient is the external identity collaborator boundary.
type IdentityClient interface {
	// Authenticate verifies credentials against the ERP. It returns 0 with a
	// nil error when the ERP rejects the credentials, and a non-nil error only
	// when the ERP itself is unreachable.
	Authenticate(ctx context.Context, login, password string) (uint, error)

	// GetUserInfo fetches the ERP user record. A nil map with a nil error
	// means the user no longer exists.
	GetUserInfo(ctx context.Context, uid uint) (map[string]any, error)
}

type Client struct {
	common   *xmlrpc.Client
	models   *xmlrpc.Client
	database string
	password string
}

var _ IdentityClient = &Client{}

func NewClient() (*Client, error) {
	url := viper.GetString("odoo.url")

	common, err := xmlrpc.NewClient(url+"/xmlrpc/2/common", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create common endpoint client: %w", err)
	}
	models, err := xmlrpc.NewClient(url+"/xmlrpc/2/object", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create object endpoint client: %w", err)
	}

	return &Client{
		common:   common,
		models:   models,
		database: viper.GetString("odoo.db"),
		password: viper.GetString("odoo.password"),
	}, nil
}

func (c *Client) Authenticate(ctx context.Context, login, password string) (uint, error) {
	var result any
	err := c.common.Call("authenticate", []any{c.database, login, password, map[string]any{}}, &result)
	if err != nil {
		logger.Error("ERP authenticate call failed", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", gw_errors.ErrIdentityUnavailable, err)
	}

	// Odoo returns the numeric uid on success and false on rejection.
	switch uid := result.(type) {
	case int64:
		if uid > 0 {
			return uint(uid), nil
		}
	case int:
		if uid > 0 {
			return uint(uid), nil
		}
	}
	return 0, nil
}

func (c *Client) GetUserInfo(ctx context.Context, uid uint) (map[string]any, error) {
	var result any
	err := c.models.Call("execute_kw", []any{
		c.database,
		int(uid),
		c.password,
		"res.users",
		"read",
		[]any{[]any{int(uid)}},
		// The account-state and role fields must be requested explicitly: the
		// ERP's read returns only the listed fields, and a principal whose
		// record omits them would otherwise default to active and unelevated.
		map[string]any{"fields": []string{"name", "email", "login", "partner_id", "active", "role"}},
	}, &result)
	if err != nil {
		logger.Error("ERP user info call failed", zap.Error(err), zap.Uint("uid", uid))
		return nil, fmt.Errorf("%w: %v", gw_errors.ErrIdentityUnavailable, err)
	}

	records, ok := result.([]any)
	if !ok || len(records) == 0 {
		return nil, nil
	}
	record, ok := records[0].(map[string]any)
	if !ok {
		return nil, nil
	}
	return record, nil
}
