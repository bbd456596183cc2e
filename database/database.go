package database

import (
	"fmt"
	"log"

	config "github.com/enrollify/enrollment-api/configs"
	"github.com/enrollify/enrollment-api/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection. Callers own the returned handle and
// pass it into the service constructors; there is no package-level instance.
func Connect() (*gorm.DB, error) {
	dsn := config.Config("DATABASE_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Track{},
		&models.Strand{},
		&models.FeeSchedule{},
		&models.Student{},
		&models.Payment{},
		&models.User{},
		&models.AuditLogEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("✅ Database migration successful")
	return nil
}

// SeedAdmin creates the initial admin user from the environment if no user
// with that email exists yet.
func SeedAdmin(db *gorm.DB) error {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("Admin credentials not configured, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminUser := models.User{
		FullName:     config.Config("ADMIN_FULL_NAME"),
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("✅ Admin user seeded successfully")
	return nil
}

type seedFee struct {
	strand  string
	tuition int64
	special int64
}

// SeedCatalog installs the default senior-high tracks, strands, and fee
// schedule on an empty catalog.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Track{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tracks := []models.Track{
		{Name: "Academic Track", Description: "College-preparatory strands"},
		{Name: "TVL Track", Description: "Technical-Vocational-Livelihood strands"},
		{Name: "Sports Track", Description: "Athletic development program"},
		{Name: "Arts and Design Track", Description: "Creative arts program"},
	}
	fees := map[string][]seedFee{
		"Academic Track": {
			{strand: "STEM", tuition: 18000, special: 5000},
			{strand: "HUMSS", tuition: 16000, special: 2000},
			{strand: "ABM", tuition: 17000, special: 2000},
			{strand: "GAS", tuition: 16000, special: 2000},
		},
		"TVL Track": {
			{strand: "ICT", tuition: 15000, special: 5000},
			{strand: "Home Economics", tuition: 15000, special: 2000},
			{strand: "Agri-Fishery", tuition: 15000, special: 2000},
		},
		"Sports Track":          {{strand: "", tuition: 15000, special: 3000}},
		"Arts and Design Track": {{strand: "", tuition: 15000, special: 4000}},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, track := range tracks {
			if err := tx.Create(&track).Error; err != nil {
				return err
			}
			for _, fee := range fees[track.Name] {
				if fee.strand != "" {
					if err := tx.Create(&models.Strand{Name: fee.strand, Track: track.Name}).Error; err != nil {
						return err
					}
				}
				entry := models.FeeSchedule{
					Track:            track.Name,
					Strand:           fee.strand,
					EnrollmentFee:    decimal.NewFromInt(5000),
					MiscellaneousFee: decimal.NewFromInt(4500),
					TuitionFee:       decimal.NewFromInt(fee.tuition),
					SpecialFee:       decimal.NewFromInt(fee.special),
				}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
			}
		}
		log.Println("✅ Default catalog seeded")
		return nil
	})
}
