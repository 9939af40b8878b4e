package models

import (
	"time"
)

type PackageDuration string

const (
	DurationMonthly   PackageDuration = "monthly"
	DurationQuarterly PackageDuration = "quarterly"
	DurationYearly    PackageDuration = "yearly"
)

// CadenceDays maps a duration tier to its fixed maintenance interval.
func (d PackageDuration) CadenceDays() int {
	switch d {
	case DurationMonthly:
		return 30
	case DurationQuarterly:
		return 120
	case DurationYearly:
		return 365
	}
	return 30
}

type MaintenancePackage struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	NameAr        string          `json:"name_ar" gorm:"size:200;not null"`
	NameEn        *string         `json:"name_en" gorm:"size:200"`
	DescriptionAr *string         `json:"description_ar" gorm:"type:text"`
	DescriptionEn *string         `json:"description_en" gorm:"type:text"`
	Duration      PackageDuration `json:"duration" gorm:"type:varchar(20);not null"`

	IncludedServices []string `json:"included_services" gorm:"serializer:json"`

	Price       int  `json:"price" gorm:"not null"`
	VisitsCount *int `json:"visits_count"`

	// Days before next_maintenance_date at which the reminder job fires
	ReminderDaysBefore int `json:"reminder_days_before" gorm:"default:3"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (MaintenancePackage) TableName() string {
	return "maintenance_packages"
}

// MaintenancePackageCreate is the admin creation payload
type MaintenancePackageCreate struct {
	NameAr             string          `json:"name_ar" binding:"required"`
	NameEn             *string         `json:"name_en"`
	DescriptionAr      *string         `json:"description_ar"`
	DescriptionEn      *string         `json:"description_en"`
	Duration           PackageDuration `json:"duration" binding:"required,oneof=monthly quarterly yearly"`
	IncludedServices   []string        `json:"included_services"`
	Price              int             `json:"price" binding:"required,gt=0"`
	VisitsCount        *int            `json:"visits_count"`
	ReminderDaysBefore *int            `json:"reminder_days_before"`
}

// MaintenancePackageUpdate is the admin update payload
type MaintenancePackageUpdate struct {
	NameAr             *string          `json:"name_ar"`
	NameEn             *string          `json:"name_en"`
	DescriptionAr      *string          `json:"description_ar"`
	DescriptionEn      *string          `json:"description_en"`
	Duration           *PackageDuration `json:"duration"`
	IncludedServices   []string         `json:"included_services"`
	Price              *int             `json:"price"`
	VisitsCount        *int             `json:"visits_count"`
	ReminderDaysBefore *int             `json:"reminder_days_before"`
	IsActive           *bool            `json:"is_active"`
}
