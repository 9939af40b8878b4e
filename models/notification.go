package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeBooking  NotificationType = "booking"
	NotificationTypeReminder NotificationType = "reminder"
	NotificationTypeTask     NotificationType = "task"
	NotificationTypeSystem   NotificationType = "system"
)

type Notification struct {
	ID      uint             `json:"id" gorm:"primaryKey"`
	UserID  uint             `json:"user_id" gorm:"not null;index"`
	Title   string           `json:"title" gorm:"size:255;not null"`
	Message string           `json:"message" gorm:"type:text;not null"`
	Type    NotificationType `json:"type" gorm:"type:varchar(20);default:'system'"`
	IsRead  bool             `json:"is_read" gorm:"default:false"`

	// Optional link back to the record the notification is about
	BookingID *uint `json:"booking_id"`
	TaskID    *uint `json:"task_id"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationListResponse is the in-app feed with its unread counter
type NotificationListResponse struct {
	UnreadCount int            `json:"unread_count"`
	Items       []Notification `json:"items"`
}
