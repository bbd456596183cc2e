package services

import (
	"log"

	"github.com/enrollify/enrollment-api/models"
	"gorm.io/gorm"
)

// AuditService appends administrative actions to the audit log. Writes are
// best-effort: a failed audit insert is logged and swallowed so it can never
// fail the operation that triggered it.
type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Log records an action. userEmail is nil for unauthenticated actions.
func (s *AuditService) Log(userEmail *string, action, details string) {
	entry := models.AuditLogEntry{
		UserEmail: userEmail,
		Action:    action,
		Details:   details,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("Error writing audit entry %s: %v", action, err)
	}
}

// Recent returns the newest entries, capped at limit (default 100).
func (s *AuditService) Recent(limit int) ([]models.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []models.AuditLogEntry
	err := s.DB.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
