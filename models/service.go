package models

import (
	"time"
)

type ServiceType string

const (
	ServiceTypeConstruction ServiceType = "construction"
	ServiceTypeMaintenance  ServiceType = "maintenance"
)

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

type Service struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	NameAr        string        `json:"name_ar" gorm:"size:200;not null"`
	NameEn        *string       `json:"name_en" gorm:"size:200"`
	DescriptionAr *string       `json:"description_ar" gorm:"type:text"`
	DescriptionEn *string       `json:"description_en" gorm:"type:text"`
	ServiceType   ServiceType   `json:"service_type" gorm:"type:varchar(20);not null"`
	ImageURL      *string       `json:"image_url" gorm:"size:500"`
	Icon          *string       `json:"icon" gorm:"size:100"`
	Price         *int          `json:"price"`
	Status        ServiceStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Service) TableName() string {
	return "services"
}

// ServiceCreate is the admin creation payload
type ServiceCreate struct {
	NameAr        string      `json:"name_ar" binding:"required"`
	NameEn        *string     `json:"name_en"`
	DescriptionAr *string     `json:"description_ar"`
	DescriptionEn *string     `json:"description_en"`
	ServiceType   ServiceType `json:"service_type" binding:"required,oneof=construction maintenance"`
	ImageURL      *string     `json:"image_url"`
	Icon          *string     `json:"icon"`
	Price         *int        `json:"price"`
}

// ServiceUpdate is the admin update payload
type ServiceUpdate struct {
	NameAr        *string        `json:"name_ar"`
	NameEn        *string        `json:"name_en"`
	DescriptionAr *string        `json:"description_ar"`
	DescriptionEn *string        `json:"description_en"`
	ServiceType   *ServiceType   `json:"service_type"`
	ImageURL      *string        `json:"image_url"`
	Icon          *string        `json:"icon"`
	Price         *int           `json:"price"`
	Status        *ServiceStatus `json:"status"`
}
