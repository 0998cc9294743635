// api/dao/user_dao.go
package dao

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/solistore/gateway/api/audit"
	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
)

type UserDAO struct {
	db           *gorm.DB
	auditService audit.Service
}

func NewUserDAO(db *gorm.DB, auditService audit.Service) *UserDAO {
	return &UserDAO{db: db, auditService: auditService}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := dao.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, gw_errors.ErrUserConflict
		}
		logger.Error("Failed to create user", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "user.created", "user", user.ID, nil)
	return user, nil
}

func (dao *UserDAO) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := dao.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrUserNotFound
		}
		logger.Error("Failed to get user", zap.Error(err), zap.Uint("userID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := dao.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrUserNotFound
		}
		logger.Error("Failed to get user by email", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := dao.db.WithContext(ctx).Save(user).Error; err != nil {
		logger.Error("Failed to update user", zap.Error(err), zap.Uint("userID", user.ID))
		return nil, gw_errors.ErrDatabaseOperation
	}

	recordAudit(ctx, dao.auditService, "user.updated", "user", user.ID, nil)
	return user, nil
}

func (dao *UserDAO) DeactivateUser(ctx context.Context, id uint) error {
	result := dao.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		logger.Error("Failed to deactivate user", zap.Error(result.Error), zap.Uint("userID", id))
		return gw_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return gw_errors.ErrUserNotFound
	}

	recordAudit(ctx, dao.auditService, "user.deactivated", "user", id, nil)
	return nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	var users []*model.User
	if err := dao.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return users, nil
}
