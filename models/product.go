package models

import (
	"time"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a store item surfaced on the home screen.
type Product struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	NameAr        string  `json:"name_ar" gorm:"size:200;not null"`
	NameEn        *string `json:"name_en" gorm:"size:200"`
	DescriptionAr *string `json:"description_ar" gorm:"type:text"`
	ImageURL      *string `json:"image_url" gorm:"size:500"`
	Category      *string `json:"category" gorm:"size:100"`

	Price         int  `json:"price" gorm:"not null"`
	OriginalPrice *int `json:"original_price"`

	Rating     *float64      `json:"rating"`
	IsFeatured bool          `json:"is_featured" gorm:"default:false"`
	Status     ProductStatus `json:"status" gorm:"type:varchar(20);default:'active'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// ProductCreate is the admin creation payload
type ProductCreate struct {
	NameAr        string   `json:"name_ar" binding:"required"`
	NameEn        *string  `json:"name_en"`
	DescriptionAr *string  `json:"description_ar"`
	ImageURL      *string  `json:"image_url"`
	Category      *string  `json:"category"`
	Price         int      `json:"price" binding:"required,gt=0"`
	OriginalPrice *int     `json:"original_price"`
	Rating        *float64 `json:"rating"`
	IsFeatured    *bool    `json:"is_featured"`
}

// ProductUpdate is the admin update payload
type ProductUpdate struct {
	NameAr        *string        `json:"name_ar"`
	NameEn        *string        `json:"name_en"`
	DescriptionAr *string        `json:"description_ar"`
	ImageURL      *string        `json:"image_url"`
	Category      *string        `json:"category"`
	Price         *int           `json:"price"`
	OriginalPrice *int           `json:"original_price"`
	Rating        *float64       `json:"rating"`
	IsFeatured    *bool          `json:"is_featured"`
	Status        *ProductStatus `json:"status"`
}
