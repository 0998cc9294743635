// api/dao/notification_dao.go
package dao

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
)

type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{db: db}
}

func (dao *NotificationDAO) CreateNotification(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	if err := dao.db.WithContext(ctx).Create(notification).Error; err != nil {
		logger.Error("Failed to create notification", zap.Error(err), zap.Uint("userID", notification.UserID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return notification, nil
}

func (dao *NotificationDAO) ListNotificationsByUser(ctx context.Context, userID uint, limit, offset int) ([]*model.Notification, error) {
	var notifications []*model.Notification
	err := dao.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error
	if err != nil {
		logger.Error("Failed to list notifications", zap.Error(err), zap.Uint("userID", userID))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return notifications, nil
}

// GetNotificationForUser is scoped to the owner: another user's notification
// id reads as absent.
func (dao *NotificationDAO) GetNotificationForUser(ctx context.Context, id, userID uint) (*model.Notification, error) {
	var notification model.Notification
	err := dao.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gw_errors.ErrNotificationNotFound
		}
		logger.Error("Failed to get notification", zap.Error(err), zap.Uint("notificationID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return &notification, nil
}

func (dao *NotificationDAO) MarkNotificationRead(ctx context.Context, id, userID uint) (*model.Notification, error) {
	result := dao.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		logger.Error("Failed to mark notification read", zap.Error(result.Error), zap.Uint("notificationID", id))
		return nil, gw_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, gw_errors.ErrNotificationNotFound
	}
	return dao.GetNotificationForUser(ctx, id, userID)
}

// ListAdminUserIDs returns the recipients for admin broadcasts.
func (dao *NotificationDAO) ListAdminUserIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := dao.db.WithContext(ctx).
		Model(&model.User{}).
		Where("is_superuser = ? AND is_active = ?", true, true).
		Pluck("id", &ids).Error
	if err != nil {
		logger.Error("Failed to list admin users", zap.Error(err))
		return nil, gw_errors.ErrDatabaseOperation
	}
	return ids, nil
}
