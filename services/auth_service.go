package services

import (
	"log"
	"regexp"

	"plupool-server/config"
	"plupool-server/models"
	"plupool-server/utils"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// AuthService owns registration and login.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user account and returns a signed token.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	if !phonePattern.MatchString(req.Phone) {
		return nil, NewValidationError("phone number %q is not valid", req.Phone)
	}

	existing, err := s.users.FindByPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("phone number is already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Phone:          req.Phone,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashed,
		Role:           req.Role,
		IsActive:       true,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	log.Printf("👤 User %d registered as %s", user.ID, user.Role)
	return s.authResponse(&user)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, NewValidationError("invalid phone number or password")
	}
	if !user.IsActive {
		return nil, NewForbiddenError("account is disabled")
	}
	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(config.AppConfig.JWT.ExpiryHours) * 3600,
		User:        user.ToResponse(),
	}, nil
}
