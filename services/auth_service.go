package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/enrollify/enrollment-api/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService manages system users and credential checks. Password hashing
// is bcrypt with a per-hash salt; the plaintext never touches storage.
type AuthService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewAuthService(db *gorm.DB, audit *AuditService) *AuthService {
	return &AuthService{DB: db, Audit: audit}
}

func (s *AuthService) CreateUser(email, password string, role models.Role, fullName string) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("role %q: %w", role, models.ErrInvalidStatus)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		FullName:     fullName,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email %s: %w", email, models.ErrDuplicateKey)
		}
		return nil, err
	}

	s.Audit.Log(nil, "ADD_USER", fmt.Sprintf("Added user: %s", email))
	return &user, nil
}

// Authenticate verifies credentials against an active user and stamps
// last_login on success. Both unknown email and wrong password come back as
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Audit.Log(&email, "LOGIN_FAILED", "User not found")
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.Audit.Log(&email, "LOGIN_FAILED", "Invalid password")
		return nil, models.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		// Login still succeeds; the stamp is advisory.
		log.Printf("Error updating last_login for %s: %v", email, err)
	}

	s.Audit.Log(&email, "LOGIN", fmt.Sprintf("%s logged in", user.Role))
	return &user, nil
}

// SetActive enables or disables a user account.
func (s *AuthService) SetActive(id uuid.UUID, active bool) error {
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListStaff returns the active staff users ordered by name.
func (s *AuthService) ListStaff() ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("role = ? AND is_active = ?", models.RoleStaff, true).
		Order("full_name").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
