package models

import (
	"time"
)

type BookingType string

const (
	BookingTypeConstruction       BookingType = "construction"
	BookingTypeMaintenanceSingle  BookingType = "maintenance_single"
	BookingTypeMaintenancePackage BookingType = "maintenance_package"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusRejected   BookingStatus = "rejected"
)

// bookingTransitions is the full transition graph. Terminal states have no
// outgoing edges, so any attempt to leave them fails.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransitionTo reports whether the graph has an edge from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

type Booking struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null;index"`
	BookingType BookingType `json:"booking_type" gorm:"type:varchar(30);not null"`

	// Exactly one of the three references is set, matching BookingType.
	PoolTypeID *uint `json:"pool_type_id"`
	ServiceID  *uint `json:"service_id"`
	PackageID  *uint `json:"package_id"`

	BookingDate time.Time `json:"booking_date" gorm:"type:date;not null"`
	BookingTime string    `json:"booking_time" gorm:"size:20;not null"`

	// Custom pool dimensions, construction bookings only
	CustomLength *float64 `json:"custom_length"`
	CustomWidth  *float64 `json:"custom_width"`
	CustomDepth  *float64 `json:"custom_depth"`

	Status              BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Notes               *string       `json:"notes" gorm:"type:text"`
	AdminNotes          *string       `json:"admin_notes" gorm:"type:text"`
	NextMaintenanceDate *time.Time    `json:"next_maintenance_date" gorm:"type:date"`
	ReminderSent        bool          `json:"reminder_sent" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User     *User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	PoolType *PoolType           `json:"pool_type,omitempty" gorm:"foreignKey:PoolTypeID"`
	Service  *Service            `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Package  *MaintenancePackage `json:"package,omitempty" gorm:"foreignKey:PackageID"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingCreate represents the booking creation payload. Dates travel as
// YYYY-MM-DD strings and times as HH:MM; the service parses and validates.
type BookingCreate struct {
	BookingType BookingType `json:"booking_type" binding:"required,oneof=construction maintenance_single maintenance_package"`
	BookingDate string      `json:"booking_date" binding:"required"`
	BookingTime string      `json:"booking_time" binding:"required"`
	Notes       *string     `json:"notes"`

	PoolTypeID *uint `json:"pool_type_id"`
	ServiceID  *uint `json:"service_id"`
	PackageID  *uint `json:"package_id"`

	CustomLength *float64 `json:"custom_length"`
	CustomWidth  *float64 `json:"custom_width"`
	CustomDepth  *float64 `json:"custom_depth"`
}

// BookingUpdate is the admin/company update payload
type BookingUpdate struct {
	Status              *BookingStatus `json:"status"`
	AdminNotes          *string        `json:"admin_notes"`
	NextMaintenanceDate *string        `json:"next_maintenance_date"`
}

// TechnicianBookingStatusUpdate is the technician status-change payload
type TechnicianBookingStatusUpdate struct {
	Status     BookingStatus `json:"status" binding:"required"`
	AdminNotes *string       `json:"admin_notes"`
}

// BookingResponse is the standard booking view
type BookingResponse struct {
	ID                  uint          `json:"id"`
	UserID              uint          `json:"user_id"`
	BookingType         BookingType   `json:"booking_type"`
	PoolTypeID          *uint         `json:"pool_type_id"`
	ServiceID           *uint         `json:"service_id"`
	PackageID           *uint         `json:"package_id"`
	BookingDate         string        `json:"booking_date"`
	BookingTime         string        `json:"booking_time"`
	CustomLength        *float64      `json:"custom_length"`
	CustomWidth         *float64      `json:"custom_width"`
	CustomDepth         *float64      `json:"custom_depth"`
	Status              BookingStatus `json:"status"`
	Notes               *string       `json:"notes"`
	AdminNotes          *string       `json:"admin_notes"`
	NextMaintenanceDate *string       `json:"next_maintenance_date"`
	ReminderSent        bool          `json:"reminder_sent"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// BookingDetailResponse adds resolved reference names
type BookingDetailResponse struct {
	BookingResponse
	PoolTypeName *string `json:"pool_type_name,omitempty"`
	ServiceName  *string `json:"service_name,omitempty"`
	PackageName  *string `json:"package_name,omitempty"`
	UserName     *string `json:"user_name,omitempty"`
}

const DateLayout = "2006-01-02"

func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		BookingType:  b.BookingType,
		PoolTypeID:   b.PoolTypeID,
		ServiceID:    b.ServiceID,
		PackageID:    b.PackageID,
		BookingDate:  b.BookingDate.Format(DateLayout),
		BookingTime:  b.BookingTime,
		CustomLength: b.CustomLength,
		CustomWidth:  b.CustomWidth,
		CustomDepth:  b.CustomDepth,
		Status:       b.Status,
		Notes:        b.Notes,
		AdminNotes:   b.AdminNotes,
		ReminderSent: b.ReminderSent,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.NextMaintenanceDate != nil {
		formatted := b.NextMaintenanceDate.Format(DateLayout)
		resp.NextMaintenanceDate = &formatted
	}
	return resp
}
