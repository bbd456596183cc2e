package utils

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/enrollify/enrollment-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPaymentsDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "receipts_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Student{}, &models.Payment{}); err != nil {
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

func TestGenerateReceiptNumber_Format(t *testing.T) {
	db := setupPaymentsDB(t)

	number, err := GenerateReceiptNumber(db)
	if err != nil {
		t.Fatalf("GenerateReceiptNumber failed: %v", err)
	}

	if len(number) != 12 {
		t.Fatalf("receipt number %q has length %d, want 12", number, len(number))
	}
	if prefix := time.Now().Format("20060102"); !strings.HasPrefix(number, prefix) {
		t.Errorf("receipt number %q does not start with today's date %s", number, prefix)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			t.Errorf("receipt number %q contains non-digit %q", number, r)
		}
	}
}

func TestGenerateReceiptNumber_SkipsTakenNumbers(t *testing.T) {
	db := setupPaymentsDB(t)

	taken := models.Payment{
		LRN:           "123456789012",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: models.MethodCash,
		ReceiptNumber: time.Now().Format("20060102") + "0042",
	}
	if err := db.Create(&taken).Error; err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		number, err := GenerateReceiptNumber(db)
		if err != nil {
			t.Fatalf("GenerateReceiptNumber failed: %v", err)
		}
		if number == taken.ReceiptNumber {
			t.Fatalf("generated a receipt number that is already taken: %s", number)
		}
	}
}
