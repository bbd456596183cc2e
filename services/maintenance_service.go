package services

import (
	"github.com/enrollify/enrollment-api/models"
	"gorm.io/gorm"
)

// MaintenanceService holds the one destructive administrative operation the
// system exposes.
type MaintenanceService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewMaintenanceService(db *gorm.DB, audit *AuditService) *MaintenanceService {
	return &MaintenanceService{DB: db, Audit: audit}
}

// ClearAllData wipes students, payments, and the audit log in one
// transaction. Users and the catalog survive.
func (s *MaintenanceService) ClearAllData(userEmail string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Student{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.AuditLogEntry{}).Error
	})
	if err != nil {
		return err
	}

	s.Audit.Log(&userEmail, "CLEAR_DATA", "All student, payment, and audit data cleared")
	return nil
}
