package services

import (
	"log"

	"plupool-server/models"
)

const notificationFeedLimit = 50

// NotificationService persists notifications and fans them out to the
// websocket hub.
type NotificationService struct {
	store NotificationStore
	sink  NotificationSink
}

func NewNotificationService(store NotificationStore, sink NotificationSink) *NotificationService {
	return &NotificationService{store: store, sink: sink}
}

// Notify stores a notification and pushes it to the user's open sockets.
// Delivery failures are logged, never surfaced to the triggering request.
func (s *NotificationService) Notify(userID uint, ntype models.NotificationType, title, message string, bookingID, taskID *uint) {
	notification := models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		BookingID: bookingID,
		TaskID:    taskID,
	}
	if err := s.store.Create(&notification); err != nil {
		log.Printf("⚠️ Failed to store notification for user %d: %v", userID, err)
		return
	}
	if s.sink != nil {
		s.sink.Push(userID, &notification)
	}
}

// Feed returns the user's recent notifications with the unread counter.
func (s *NotificationService) Feed(userID uint) (*models.NotificationListResponse, error) {
	items, err := s.store.ListByUser(userID, notificationFeedLimit)
	if err != nil {
		return nil, err
	}
	unread, err := s.store.CountUnread(userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Notification{}
	}
	return &models.NotificationListResponse{
		UnreadCount: int(unread),
		Items:       items,
	}, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *NotificationService) MarkRead(id, userID uint) error {
	return s.store.MarkRead(id, userID)
}

// MarkAllRead clears the user's unread counter.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.store.MarkAllRead(userID)
}
