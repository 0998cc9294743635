// api/service/notification_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	gw_errors "github.com/solistore/gateway/api/errors"
	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
	api_mock "github.com/solistore/gateway/api/test/mock"
)

func setupNotificationTest(t *testing.T) (*NotificationService, *api_mock.MockNotificationStore) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	store := new(api_mock.MockNotificationStore)
	return NewNotificationService(store), store
}

func TestNotifyOrderChangePersistsForOwner(t *testing.T) {
	svc, store := setupNotificationTest(t)

	var stored *model.Notification
	store.On("CreateNotification", testify_mock.Anything, testify_mock.Anything).
		Run(func(args testify_mock.Arguments) {
			stored = args.Get(1).(*model.Notification)
		}).
		Return(&model.Notification{ID: 1}, nil)

	order := model.Order{ID: 3, UserID: 42, Name: "ORD/2026/003", Status: model.OrderStatusShipped, OrderDate: time.Now()}
	require.NoError(t, svc.NotifyOrderChange(context.Background(), "status_updated", order))

	require.NotNil(t, stored)
	assert.Equal(t, uint(42), stored.UserID)
	assert.Equal(t, model.NotificationStatusSent, stored.Status)
	assert.Contains(t, stored.Title, "ORD/2026/003")
	assert.Contains(t, stored.Body, "shipped")
}

func TestNotifyOrderChangeSurvivesStoreFailure(t *testing.T) {
	svc, store := setupNotificationTest(t)
	store.On("CreateNotification", testify_mock.Anything, testify_mock.Anything).
		Return(nil, errors.New("connection refused"))

	// A dropped notification must never fail the order operation behind it.
	err := svc.NotifyOrderChange(context.Background(), "created", model.Order{ID: 3, UserID: 42})
	assert.NoError(t, err)
}

func TestNotifyAdminsFansOutToEveryAdmin(t *testing.T) {
	svc, store := setupNotificationTest(t)

	var recipients []uint
	store.On("ListAdminUserIDs", testify_mock.Anything).Return([]uint{1, 7}, nil)
	store.On("CreateNotification", testify_mock.Anything, testify_mock.Anything).
		Run(func(args testify_mock.Arguments) {
			recipients = append(recipients, args.Get(1).(*model.Notification).UserID)
		}).
		Return(&model.Notification{ID: 1}, nil)

	require.NoError(t, svc.NotifyAdmins(context.Background(), "new order placed"))

	store.AssertNumberOfCalls(t, "CreateNotification", 2)
	assert.Equal(t, []uint{1, 7}, recipients)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	svc, store := setupNotificationTest(t)
	store.On("MarkNotificationRead", testify_mock.Anything, uint(5), uint(7)).
		Return(nil, gw_errors.ErrNotificationNotFound)

	// Another user's notification id reads as absent, not forbidden.
	_, err := svc.MarkRead(context.Background(), 5, 7)
	assert.ErrorIs(t, err, gw_errors.ErrNotificationNotFound)
}

func TestGetNotificationReturnsOwnRow(t *testing.T) {
	svc, store := setupNotificationTest(t)
	store.On("GetNotificationForUser", testify_mock.Anything, uint(5), uint(42)).
		Return(&model.Notification{ID: 5, UserID: 42, Title: "Store event"}, nil)

	notification, err := svc.GetNotification(context.Background(), 5, 42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), notification.UserID)
}
