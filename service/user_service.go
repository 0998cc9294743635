// api/service/user_service.go
package service

import (
	"context"
	"fmt"

	"github.com/solistore/gateway/api/model"
	"github.com/solistore/gateway/api/util"
)

// UserAdminStore extends the resolver's UserStore with the account-management
// operations.
type UserAdminStore interface {
	UserStore
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeactivateUser(ctx context.Context, id uint) error
	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error)
}

type IUserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error)
	UpdateUser(ctx context.Context, id uint, update model.UserUpdate) (*model.User, error)
	DeactivateUser(ctx context.Context, id uint) error
}

type UserService struct {
	store         UserAdminStore
	cache         *util.CacheService
	eventBus      *util.EventBus
	notifications INotificationService
}

var _ IUserService = &UserService{}

func NewUserService(store UserAdminStore, cache *util.CacheService, eventBus *util.EventBus, notifications INotificationService) *UserService {
	return &UserService{
		store:         store,
		cache:         cache,
		eventBus:      eventBus,
		notifications: notifications,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	key := fmt.Sprintf("user:get_user:%d", id)
	return util.GetOrSet(ctx, s.cache, key, 0,
		func(ctx context.Context) (*model.User, error) {
			return s.store.GetUserByID(ctx, id)
		})
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	key := util.CacheKey("users", "list_users", map[string]any{
		"limit":  limit,
		"offset": offset,
	})
	return util.GetOrSet(ctx, s.cache, key, 0,
		func(ctx context.Context) ([]*model.User, error) {
			return s.store.ListUsers(ctx, limit, offset)
		})
}

// UpdateUser applies the provided fields only; absent fields keep their
// current value.
func (s *UserService) UpdateUser(ctx context.Context, id uint, update model.UserUpdate) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Street != nil {
		user.Street = *update.Street
	}
	if update.City != nil {
		user.City = *update.City
	}
	if update.Zip != nil {
		user.Zip = *update.Zip
	}
	if update.IsCompany != nil {
		user.IsCompany = *update.IsCompany
	}

	updated, err := s.store.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.invalidateUser(ctx, id)
	s.eventBus.Publish(ctx, "user.updated", updated)
	s.notifications.NotifyUserChange(ctx, "updated", *updated)
	return updated, nil
}

// DeactivateUser flips the account inactive. Tokens already issued keep
// verifying, but the resolver refuses them once it sees the inactive flag.
func (s *UserService) DeactivateUser(ctx context.Context, id uint) error {
	if err := s.store.DeactivateUser(ctx, id); err != nil {
		return err
	}

	s.invalidateUser(ctx, id)
	s.eventBus.Publish(ctx, "user.deactivated", id)
	return nil
}

func (s *UserService) invalidateUser(ctx context.Context, id uint) {
	s.cache.Invalidate(ctx,
		"users:*",
		fmt.Sprintf("user:get_user:%d", id))
}
