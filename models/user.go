package models

import (
	"time"
)

type UserRole string

const (
	RolePoolOwner  UserRole = "pool_owner"
	RoleTechnician UserRole = "technician"
	RoleCompany    UserRole = "company"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Phone          string    `json:"phone" gorm:"size:20;not null;uniqueIndex"`
	Email          *string   `json:"email" gorm:"size:255;uniqueIndex"`
	FullName       string    `json:"full_name" gorm:"size:255"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	Role           UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'pool_owner'"`
	ProfileImage   *string   `json:"profile_image" gorm:"size:500"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	IsVerified     bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest represents the signup payload
type RegisterRequest struct {
	Phone    string   `json:"phone" binding:"required"`
	Password string   `json:"password" binding:"required,min=6"`
	FullName string   `json:"full_name" binding:"required"`
	Email    *string  `json:"email"`
	Role     UserRole `json:"role" binding:"required,oneof=pool_owner technician company"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned from register/login
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID           uint      `json:"id"`
	Phone        string    `json:"phone"`
	Email        *string   `json:"email"`
	FullName     string    `json:"full_name"`
	Role         UserRole  `json:"role"`
	ProfileImage *string   `json:"profile_image"`
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Phone:        u.Phone,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
		IsActive:     u.IsActive,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
	}
}
