package models

import (
	"time"
)

type TechnicianTaskStatus string

const (
	TaskStatusPending    TechnicianTaskStatus = "pending"
	TaskStatusScheduled  TechnicianTaskStatus = "scheduled"
	TaskStatusInProgress TechnicianTaskStatus = "in_progress"
	TaskStatusCompleted  TechnicianTaskStatus = "completed"
	TaskStatusCancelled  TechnicianTaskStatus = "cancelled"
)

// Rank orders statuses for list views: actionable work first.
func (s TechnicianTaskStatus) Rank() int {
	switch s {
	case TaskStatusInProgress:
		return 0
	case TaskStatusScheduled:
		return 1
	case TaskStatusPending:
		return 2
	case TaskStatusCompleted:
		return 3
	}
	return 4
}

// taskTransitions is the forward chain a technician drives a task through.
// CANCELLED is set by dispatch and is terminal, as is COMPLETED.
var taskTransitions = map[TechnicianTaskStatus][]TechnicianTaskStatus{
	TaskStatusPending:    {TaskStatusScheduled},
	TaskStatusScheduled:  {TaskStatusInProgress},
	TaskStatusInProgress: {TaskStatusCompleted},
}

// CanAdvanceTo reports whether the chain has an edge from s to next.
func (s TechnicianTaskStatus) CanAdvanceTo(next TechnicianTaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityNormal TaskPriority = "normal"
)

// Rank orders priorities for list views: most time-critical first.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	}
	return 2
}

type TechnicianTask struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	TechnicianID uint `json:"technician_id" gorm:"not null;index"`

	Title       string  `json:"title" gorm:"size:255;not null"`
	Description *string `json:"description" gorm:"type:text"`

	ScheduledDate time.Time `json:"scheduled_date" gorm:"type:date;not null"`
	ScheduledTime *string   `json:"scheduled_time" gorm:"size:20"`

	Status   TechnicianTaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	Priority TaskPriority         `json:"priority" gorm:"type:varchar(20);not null;default:'normal'"`

	LocationName      *string  `json:"location_name" gorm:"size:255"`
	LocationAddress   *string  `json:"location_address" gorm:"size:255"`
	LocationLatitude  *float64 `json:"location_latitude"`
	LocationLongitude *float64 `json:"location_longitude"`

	// Denormalized customer snapshot; intentionally not a live reference so
	// the technician view stays stable if the profile changes later.
	CustomerName   *string `json:"customer_name" gorm:"size:255"`
	CustomerAvatar *string `json:"customer_avatar" gorm:"size:500"`
	CustomerPhone  *string `json:"customer_phone" gorm:"size:50"`

	Notes *string `json:"notes" gorm:"type:text"`

	ClientRating   *int    `json:"client_rating"`
	ClientFeedback *string `json:"client_feedback" gorm:"type:text"`

	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relationships
	Technician  *User              `json:"technician,omitempty" gorm:"foreignKey:TechnicianID"`
	PoolProfile *ClientPoolProfile `json:"pool_profile,omitempty" gorm:"foreignKey:TaskID"`
}

func (TechnicianTask) TableName() string {
	return "technician_tasks"
}

// MarkCompleted moves the task to COMPLETED and attaches the optional client
// rating/feedback. completedAt defaults to now.
func (t *TechnicianTask) MarkCompleted(rating *int, feedback *string, completedAt *time.Time) {
	t.Status = TaskStatusCompleted
	if completedAt != nil {
		t.CompletedAt = completedAt
	} else {
		now := time.Now().UTC()
		t.CompletedAt = &now
	}
	if rating != nil {
		t.ClientRating = rating
	}
	if feedback != nil {
		t.ClientFeedback = feedback
	}
}

// TechnicianTaskResponse is the standard task view
type TechnicianTaskResponse struct {
	ID                uint                 `json:"id"`
	TechnicianID      uint                 `json:"technician_id"`
	Title             string               `json:"title"`
	Description       *string              `json:"description"`
	ScheduledDate     string               `json:"scheduled_date"`
	ScheduledTime     *string              `json:"scheduled_time"`
	Status            TechnicianTaskStatus `json:"status"`
	Priority          TaskPriority         `json:"priority"`
	LocationName      *string              `json:"location_name"`
	LocationAddress   *string              `json:"location_address"`
	LocationLatitude  *float64             `json:"location_latitude"`
	LocationLongitude *float64             `json:"location_longitude"`
	CustomerName      *string              `json:"customer_name"`
	CustomerAvatar    *string              `json:"customer_avatar"`
	CustomerPhone     *string              `json:"customer_phone"`
	Notes             *string              `json:"notes"`
	ClientRating      *int                 `json:"client_rating"`
	ClientFeedback    *string              `json:"client_feedback"`
	CompletedAt       *time.Time           `json:"completed_at"`
	CreatedAt         time.Time            `json:"created_at"`
}

func (t *TechnicianTask) ToResponse() TechnicianTaskResponse {
	return TechnicianTaskResponse{
		ID:                t.ID,
		TechnicianID:      t.TechnicianID,
		Title:             t.Title,
		Description:       t.Description,
		ScheduledDate:     t.ScheduledDate.Format(DateLayout),
		ScheduledTime:     t.ScheduledTime,
		Status:            t.Status,
		Priority:          t.Priority,
		LocationName:      t.LocationName,
		LocationAddress:   t.LocationAddress,
		LocationLatitude:  t.LocationLatitude,
		LocationLongitude: t.LocationLongitude,
		CustomerName:      t.CustomerName,
		CustomerAvatar:    t.CustomerAvatar,
		CustomerPhone:     t.CustomerPhone,
		Notes:             t.Notes,
		ClientRating:      t.ClientRating,
		ClientFeedback:    t.ClientFeedback,
		CompletedAt:       t.CompletedAt,
		CreatedAt:         t.CreatedAt,
	}
}

// TechnicianTaskListResponse is one page of the filtered task list
type TechnicianTaskListResponse struct {
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
	HasMore  bool                     `json:"has_more"`
	Tasks    []TechnicianTaskResponse `json:"tasks"`
}

// TechnicianTaskCreate is the dispatch payload assigning work to a technician
type TechnicianTaskCreate struct {
	TechnicianID      uint         `json:"technician_id" binding:"required"`
	Title             string       `json:"title" binding:"required"`
	Description       *string      `json:"description"`
	ScheduledDate     string       `json:"scheduled_date" binding:"required"`
	ScheduledTime     *string      `json:"scheduled_time"`
	Priority          TaskPriority `json:"priority" binding:"omitempty,oneof=urgent high normal"`
	LocationName      *string      `json:"location_name"`
	LocationAddress   *string      `json:"location_address"`
	LocationLatitude  *float64     `json:"location_latitude"`
	LocationLongitude *float64     `json:"location_longitude"`
	CustomerName      *string      `json:"customer_name"`
	CustomerAvatar    *string      `json:"customer_avatar"`
	CustomerPhone     *string      `json:"customer_phone"`
	Notes             *string      `json:"notes"`
}

// TaskStatusUpdate advances a task along its chain
type TaskStatusUpdate struct {
	Status TechnicianTaskStatus `json:"status" binding:"required,oneof=scheduled in_progress completed"`
}

// TaskCompletionUpdate attaches rating/feedback on completion
type TaskCompletionUpdate struct {
	ClientRating   *int    `json:"client_rating" binding:"omitempty,min=1,max=5"`
	ClientFeedback *string `json:"client_feedback"`
}

// ClientDetailsSection is the client block of the task detail screen
type ClientDetailsSection struct {
	FullName        *string              `json:"full_name"`
	Phone           *string              `json:"phone"`
	Avatar          *string              `json:"avatar"`
	LocationName    *string              `json:"location_name"`
	LocationAddress *string              `json:"location_address"`
	Latitude        *float64             `json:"latitude"`
	Longitude       *float64             `json:"longitude"`
	MapURL          *string              `json:"map_url"`
	ScheduledDate   string               `json:"scheduled_date"`
	ScheduledTime   *string              `json:"scheduled_time"`
	Priority        TaskPriority         `json:"priority"`
	Status          TechnicianTaskStatus `json:"status"`
}

// TechnicianTaskDetailResponse composes the full task detail screen
type TechnicianTaskDetailResponse struct {
	Task         TechnicianTaskResponse      `json:"task"`
	Client       ClientDetailsSection        `json:"client"`
	PoolProfile  *ClientPoolProfile          `json:"pool_profile"`
	WaterQuality WaterQualityHistoryResponse `json:"water_quality"`
}
