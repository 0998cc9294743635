package model

import "time"

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is a persisted per-user message. Rows are written by the
// services when something the user cares about changes; the owner reads them
// through the notification endpoints.
type Notification struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	UserID    uint               `json:"user_id" gorm:"index"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	Status    NotificationStatus `json:"status" gorm:"default:pending"`
	Read      bool               `json:"read" gorm:"default:false"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
