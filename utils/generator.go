package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/enrollify/enrollment-api/models"
	"gorm.io/gorm"
)

const receiptAttempts = 5

// GenerateReceiptNumber produces a date-prefixed receipt number of the form
// YYYYMMDDNNNN and retries when the 4 random digits collide with an existing
// payment. The payments table carries a unique index on receipt_number as the
// final guard.
func GenerateReceiptNumber(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	prefix := time.Now().Format("20060102")

	for i := 0; i < receiptAttempts; i++ {
		number := fmt.Sprintf("%s%04d", prefix, seededRand.Intn(10000))

		var count int64
		err := tx.Model(&models.Payment{}).Where("receipt_number = ?", number).Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", errors.New("failed to generate unique receipt number")
}
