package models

import (
	"time"
)

type PoolType struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	NameAr        string  `json:"name_ar" gorm:"size:200;not null"`
	NameEn        *string `json:"name_en" gorm:"size:200"`
	DescriptionAr *string `json:"description_ar" gorm:"type:text"`
	DescriptionEn *string `json:"description_en" gorm:"type:text"`
	ImageURL      *string `json:"image_url" gorm:"size:500"`
	VideoURL      *string `json:"video_url" gorm:"size:500"`

	// Default dimensions; a booking may override with custom ones
	LengthMeters *float64 `json:"length_meters"`
	WidthMeters  *float64 `json:"width_meters"`
	DepthMeters  *float64 `json:"depth_meters"`

	Features    []string `json:"features" gorm:"serializer:json"`
	SuitableFor *string  `json:"suitable_for" gorm:"type:text"`

	BasePrice *int `json:"base_price"`
	IsActive  bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PoolType) TableName() string {
	return "pool_types"
}

// PoolTypeCreate is the admin creation payload
type PoolTypeCreate struct {
	NameAr        string   `json:"name_ar" binding:"required"`
	NameEn        *string  `json:"name_en"`
	DescriptionAr *string  `json:"description_ar"`
	DescriptionEn *string  `json:"description_en"`
	ImageURL      *string  `json:"image_url"`
	VideoURL      *string  `json:"video_url"`
	LengthMeters  *float64 `json:"length_meters"`
	WidthMeters   *float64 `json:"width_meters"`
	DepthMeters   *float64 `json:"depth_meters"`
	Features      []string `json:"features"`
	SuitableFor   *string  `json:"suitable_for"`
	BasePrice     *int     `json:"base_price"`
}

// PoolTypeUpdate is the admin update payload
type PoolTypeUpdate struct {
	NameAr        *string  `json:"name_ar"`
	NameEn        *string  `json:"name_en"`
	DescriptionAr *string  `json:"description_ar"`
	DescriptionEn *string  `json:"description_en"`
	ImageURL      *string  `json:"image_url"`
	VideoURL      *string  `json:"video_url"`
	LengthMeters  *float64 `json:"length_meters"`
	WidthMeters   *float64 `json:"width_meters"`
	DepthMeters   *float64 `json:"depth_meters"`
	Features      []string `json:"features"`
	SuitableFor   *string  `json:"suitable_for"`
	BasePrice     *int     `json:"base_price"`
	IsActive      *bool    `json:"is_active"`
}
