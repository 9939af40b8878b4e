package services

import (
	"time"

	"plupool-server/models"
)

// Store interfaces abstract persistence so the services stay testable.
// Single-record lookups return (nil, nil) when nothing matches; the caller
// decides whether that is a NotFoundError.

type BookingStore interface {
	Create(booking *models.Booking) error
	Save(booking *models.Booking) error
	FindByID(id uint) (*models.Booking, error)
	ListByUser(userID uint) ([]models.Booking, error)
	ListByStatus(statuses ...models.BookingStatus) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	ListDueForReminder(from, to time.Time) ([]models.Booking, error)
}

type ReferenceStore interface {
	FindPoolType(id uint) (*models.PoolType, error)
	FindService(id uint) (*models.Service, error)
	FindPackage(id uint) (*models.MaintenancePackage, error)
}

type TaskStore interface {
	Create(task *models.TechnicianTask) error
	Save(task *models.TechnicianTask) error
	FindByID(id uint) (*models.TechnicianTask, error)
	ListByTechnician(technicianID uint) ([]models.TechnicianTask, error)
	FindPoolProfile(taskID uint) (*models.ClientPoolProfile, error)
	ListReadings(taskID uint) ([]models.WaterQualityReading, error)
	CreateReading(reading *models.WaterQualityReading) error
}

type UserStore interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	CountByRole(role models.UserRole) (int64, error)
}

type NotificationStore interface {
	Create(notification *models.Notification) error
	ListByUser(userID uint, limit int) ([]models.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
}

// NotificationSink receives real-time pushes after a notification is stored.
type NotificationSink interface {
	Push(userID uint, notification *models.Notification)
}

// HomeStore serves the shared home-screen content blocks.
type HomeStore interface {
	ListActiveOffers(limit int) ([]models.ServiceOffer, error)
	ListFeaturedProducts(limit int) ([]models.Product, error)
	ListApprovedComments(limit int) ([]models.Comment, error)
	AverageCommentRating() (float64, error)
}
