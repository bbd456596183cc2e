package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/enrollify/enrollment-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "enrollment_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Track{},
		&models.Strand{},
		&models.FeeSchedule{},
		&models.Student{},
		&models.Payment{},
		&models.User{},
		&models.AuditLogEntry{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestServices(t *testing.T) (*gorm.DB, *CatalogService, *StudentService, *PaymentService) {
	t.Helper()

	db := setupTestDB(t)
	audit := NewAuditService(db)
	catalog := NewCatalogService(db, audit)
	students := NewStudentService(db, catalog, audit)
	payments := NewPaymentService(db, NewFeeService(catalog), audit)
	return db, catalog, students, payments
}

// seedAcademicTrack installs the Academic Track with a STEM strand and its
// fee entry (5000 + 4500 + 18000 + 5000 = 32500).
func seedAcademicTrack(t *testing.T, catalog *CatalogService) {
	t.Helper()

	if err := catalog.AddTrack("Academic Track", "College-preparatory strands"); err != nil {
		t.Fatalf("AddTrack failed: %v", err)
	}
	if err := catalog.AddStrand("STEM", "Academic Track"); err != nil {
		t.Fatalf("AddStrand failed: %v", err)
	}
	err := catalog.SetFees("Academic Track", "STEM",
		decimal.NewFromInt(5000), decimal.NewFromInt(4500),
		decimal.NewFromInt(18000), decimal.NewFromInt(5000))
	if err != nil {
		t.Fatalf("SetFees failed: %v", err)
	}
}

func testStudentInput(lrn string) StudentInput {
	return StudentInput{
		LRN:             lrn,
		FirstName:       "Maria",
		MiddleName:      "Santos",
		LastName:        "Reyes",
		Gender:          models.GenderFemale,
		BirthDate:       mustDate("2008-03-15"),
		Email:           "maria.reyes@example.com",
		Phone:           "09171234567",
		Address:         "Quezon City",
		GradeLevel:      models.GradeEleven,
		Track:           "Academic Track",
		Strand:          "STEM",
		GuardianName:    "Elena Reyes",
		GuardianContact: "09179876543",
	}
}
