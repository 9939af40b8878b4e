package models

import (
	"fmt"
	"time"
)

// Ideal water chemistry ranges shown alongside readings.
var (
	IdealPHRange          = [2]float64{7.2, 7.6}
	IdealChlorineRange    = [2]float64{1.0, 3.0}
	IdealTemperatureRange = [2]float64{26.0, 30.0}
)

// WaterQualityReading is a single chemistry measurement taken during a visit.
type WaterQualityReading struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	TaskID uint `json:"task_id" gorm:"not null;index"`

	PHLevel       *float64 `json:"ph_level"`
	ChlorineLevel *float64 `json:"chlorine_level"`
	TemperatureC  *float64 `json:"temperature_c"`
	Notes         *string  `json:"notes" gorm:"type:text"`

	RecordedAt time.Time `json:"recorded_at" gorm:"autoCreateTime"`
}

func (WaterQualityReading) TableName() string {
	return "water_quality_readings"
}

// WaterQualityCreate is the technician reading payload
type WaterQualityCreate struct {
	PHLevel       *float64 `json:"ph_level" binding:"omitempty,gte=0,lte=14"`
	ChlorineLevel *float64 `json:"chlorine_level" binding:"omitempty,gte=0"`
	TemperatureC  *float64 `json:"temperature_c"`
	Notes         *string  `json:"notes"`
}

// WaterQualityIdealRanges renders the gauge bounds as display strings.
type WaterQualityIdealRanges struct {
	PH          string `json:"ph"`
	Chlorine    string `json:"chlorine"`
	Temperature string `json:"temperature"`
}

// WaterQualityHistoryResponse is the readings block of the task detail
// screen: the newest reading split out, the rest as history.
type WaterQualityHistoryResponse struct {
	Latest      *WaterQualityReading    `json:"latest"`
	History     []WaterQualityReading   `json:"history"`
	IdealRanges WaterQualityIdealRanges `json:"ideal_ranges"`
}

// NewWaterQualityHistory splits the newest reading from the rest and attaches
// the ideal ranges. Ties on recorded_at go to the last stored reading.
func NewWaterQualityHistory(readings []WaterQualityReading) WaterQualityHistoryResponse {
	resp := WaterQualityHistoryResponse{
		History: []WaterQualityReading{},
		IdealRanges: WaterQualityIdealRanges{
			PH:          formatIdealRange(IdealPHRange, ""),
			Chlorine:    formatIdealRange(IdealChlorineRange, " ppm"),
			Temperature: formatIdealRange(IdealTemperatureRange, "°C"),
		},
	}
	if len(readings) == 0 {
		return resp
	}

	latest := 0
	for i := 1; i < len(readings); i++ {
		if !readings[i].RecordedAt.Before(readings[latest].RecordedAt) {
			latest = i
		}
	}
	newest := readings[latest]
	resp.Latest = &newest
	for i := range readings {
		if i != latest {
			resp.History = append(resp.History, readings[i])
		}
	}
	return resp
}

func formatIdealRange(bounds [2]float64, unit string) string {
	return fmt.Sprintf("%.1f - %.1f%s", bounds[0], bounds[1], unit)
}
