package models

import (
	"time"
)

// Comment is a client testimonial shown on the home screen.
type Comment struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	AuthorName string  `json:"author_name" gorm:"size:200;not null"`
	AvatarURL  *string `json:"avatar_url" gorm:"size:500"`
	Text       string  `json:"text" gorm:"type:text;not null"`
	Rating     int     `json:"rating" gorm:"not null;default:5"`
	IsApproved bool    `json:"is_approved" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentCreate is the testimonial submission payload
type CommentCreate struct {
	AuthorName string  `json:"author_name" binding:"required"`
	AvatarURL  *string `json:"avatar_url"`
	Text       string  `json:"text" binding:"required"`
	Rating     int     `json:"rating" binding:"required,min=1,max=5"`
}
