package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"plupool-server/database"
	"plupool-server/models"
)

// BookingRepository persists bookings through GORM.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{db: database.DB}
}

func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepository) Save(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

func (r *BookingRepository) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.
		Preload("User").
		Preload("PoolType").
		Preload("Service").
		Preload("Package").
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListByStatus(statuses ...models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("User").
		Where("status IN ?", statuses).
		Order("booking_date ASC, booking_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListDueForReminder(from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("Package").
		Where("next_maintenance_date IS NOT NULL").
		Where("next_maintenance_date BETWEEN ? AND ?", from, to).
		Where("reminder_sent = ?", false).
		Where("status NOT IN ?", []models.BookingStatus{
			models.BookingStatusCancelled,
			models.BookingStatusRejected,
		}).
		Find(&bookings).Error
	return bookings, err
}
