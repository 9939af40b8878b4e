package models

// DefaultRenewalTime is offered when the original booking has no usable time.
const DefaultRenewalTime = "09:00"

// RenewalRequest schedules the next package cycle
type RenewalRequest struct {
	NewDate string  `json:"new_date" binding:"required"`
	NewTime *string `json:"new_time"`
	Notes   *string `json:"notes"`
}

// PackageProgress summarizes how far the current cycle got
type PackageProgress struct {
	VisitsTotal     int `json:"visits_total"`
	VisitsCompleted int `json:"visits_completed"`
}

// RenewalInfoResponse pre-fills the renewal screen
type RenewalInfoResponse struct {
	BookingID       uint            `json:"booking_id"`
	PackageID       uint            `json:"package_id"`
	PackageName     string          `json:"package_name"`
	Duration        PackageDuration `json:"duration"`
	CadenceDays     int             `json:"cadence_days"`
	Price           int             `json:"price"`
	Progress        PackageProgress `json:"progress"`
	DefaultNewDate  string          `json:"default_new_date"`
	DefaultNewTime  string          `json:"default_new_time"`
	PreviousDate    string          `json:"previous_date"`
	PreviousEndDate *string         `json:"previous_end_date"`
}
