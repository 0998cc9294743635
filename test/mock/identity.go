// test/mock/identity.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIdentityClient is a mock implementation of odoo.IdentityClient
type MockIdentityClient struct {
	mock.Mock
}

func (m *MockIdentityClient) Authenticate(ctx context.Context, login, password string) (uint, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockIdentityClient) GetUserInfo(ctx context.Context, uid uint) (map[string]any, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
