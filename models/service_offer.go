package models

import (
	"time"
)

type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusInactive OfferStatus = "inactive"
)

// ServiceOffer is a promotional card on the home screen.
type ServiceOffer struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	TitleAr       string  `json:"title_ar" gorm:"size:200;not null"`
	TitleEn       *string `json:"title_en" gorm:"size:200"`
	DescriptionAr *string `json:"description_ar" gorm:"type:text"`
	ImageURL      *string `json:"image_url" gorm:"size:500"`
	BadgeText     *string `json:"badge_text" gorm:"size:100"`

	Price         *int `json:"price"`
	OriginalPrice *int `json:"original_price"`

	IsFeatured bool        `json:"is_featured" gorm:"default:false"`
	SortOrder  int         `json:"sort_order" gorm:"default:0"`
	Status     OfferStatus `json:"status" gorm:"type:varchar(20);default:'active'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ServiceOffer) TableName() string {
	return "service_offers"
}

// ServiceOfferCreate is the admin creation payload
type ServiceOfferCreate struct {
	TitleAr       string  `json:"title_ar" binding:"required"`
	TitleEn       *string `json:"title_en"`
	DescriptionAr *string `json:"description_ar"`
	ImageURL      *string `json:"image_url"`
	BadgeText     *string `json:"badge_text"`
	Price         *int    `json:"price"`
	OriginalPrice *int    `json:"original_price"`
	IsFeatured    *bool   `json:"is_featured"`
	SortOrder     *int    `json:"sort_order"`
}

// ServiceOfferUpdate is the admin update payload
type ServiceOfferUpdate struct {
	TitleAr       *string      `json:"title_ar"`
	TitleEn       *string      `json:"title_en"`
	DescriptionAr *string      `json:"description_ar"`
	ImageURL      *string      `json:"image_url"`
	BadgeText     *string      `json:"badge_text"`
	Price         *int         `json:"price"`
	OriginalPrice *int         `json:"original_price"`
	IsFeatured    *bool        `json:"is_featured"`
	SortOrder     *int         `json:"sort_order"`
	Status        *OfferStatus `json:"status"`
}
