package models

import (
	"time"
)

// ClientPoolProfile describes the pool a task is performed on. One profile
// per task; dispatch fills it in when the task is created.
type ClientPoolProfile struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	TaskID uint `json:"task_id" gorm:"not null;uniqueIndex"`

	PoolTypeName *string  `json:"pool_type_name" gorm:"size:200"`
	LengthMeters *float64 `json:"length_meters"`
	WidthMeters  *float64 `json:"width_meters"`
	DepthMeters  *float64 `json:"depth_meters"`
	VolumeLiters *float64 `json:"volume_liters"`

	FilterType       *string    `json:"filter_type" gorm:"size:100"`
	LastServiceDate  *time.Time `json:"last_service_date" gorm:"type:date"`
	SpecialEquipment *string    `json:"special_equipment" gorm:"type:text"`
	Notes            *string    `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ClientPoolProfile) TableName() string {
	return "client_pool_profiles"
}
