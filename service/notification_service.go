// api/service/notification_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
)

// NotificationStore is the slice of the persistence layer the notification
// service needs.
type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	ListNotificationsByUser(ctx context.Context, userID uint, limit, offset int) ([]*model.Notification, error)
	GetNotificationForUser(ctx context.Context, id, userID uint) (*model.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uint) (*model.Notification, error)
	ListAdminUserIDs(ctx context.Context) ([]uint, error)
}

type INotificationService interface {
	NotifyOrderChange(ctx context.Context, changeType string, order model.Order) error
	NotifyUserChange(ctx context.Context, changeType string, user model.User) error
	NotifyAdmins(ctx context.Context, message string) error
	ListNotifications(ctx context.Context, userID uint, limit, offset int) ([]*model.Notification, error)
	GetNotification(ctx context.Context, id, userID uint) (*model.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) (*model.Notification, error)
}

// NotificationService persists per-user notifications. Writing a notification
// is best effort: a failed write is logged and must never fail the business
// operation that triggered it.
type NotificationService struct {
	store NotificationStore
}

var _ INotificationService = &NotificationService{}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) NotifyOrderChange(ctx context.Context, changeType string, order model.Order) error {
	notification := &model.Notification{
		UserID: order.UserID,
		Title:  fmt.Sprintf("Order %s %s", order.Name, changeType),
		Body:   fmt.Sprintf("Your order %s is now %s.", order.Name, order.Status),
		Status: model.NotificationStatusSent,
	}
	if _, err := s.store.CreateNotification(ctx, notification); err != nil {
		logger.Warn("Dropping order notification",
			zap.Error(err),
			zap.Uint("orderID", order.ID),
			zap.Uint("userID", order.UserID))
		return nil
	}
	return nil
}

func (s *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	notification := &model.Notification{
		UserID: user.ID,
		Title:  fmt.Sprintf("Account %s", changeType),
		Body:   fmt.Sprintf("Your account details were %s.", changeType),
		Status: model.NotificationStatusSent,
	}
	if _, err := s.store.CreateNotification(ctx, notification); err != nil {
		logger.Warn("Dropping user notification", zap.Error(err), zap.Uint("userID", user.ID))
		return nil
	}
	return nil
}

// NotifyAdmins fans the message out to every active admin account.
func (s *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	ids, err := s.store.ListAdminUserIDs(ctx)
	if err != nil {
		logger.Warn("Dropping admin notification", zap.Error(err))
		return nil
	}
	for _, id := range ids {
		notification := &model.Notification{
			UserID: id,
			Title:  "Store event",
			Body:   message,
			Status: model.NotificationStatusSent,
		}
		if _, err := s.store.CreateNotification(ctx, notification); err != nil {
			logger.Warn("Dropping admin notification", zap.Error(err), zap.Uint("userID", id))
		}
	}
	return nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID uint, limit, offset int) ([]*model.Notification, error) {
	return s.store.ListNotificationsByUser(ctx, userID, limit, offset)
}

func (s *NotificationService) GetNotification(ctx context.Context, id, userID uint) (*model.Notification, error) {
	return s.store.GetNotificationForUser(ctx, id, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint) (*model.Notification, error) {
	return s.store.MarkNotificationRead(ctx, id, userID)
}
