package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is written once and never updated or deleted, except by the
// cascade when its student is removed.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"student_id"`
	LRN           string          `gorm:"size:12;not null;index" json:"lrn"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null" json:"payment_method"`
	ReceiptNumber string          `gorm:"size:50;not null;unique" json:"receipt_number"`
	PaymentDate   time.Time       `gorm:"autoCreateTime" json:"payment_date"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Receipt joins a payment with the current student snapshot. The student
// fields reflect the record at lookup time, not at payment time.
type Receipt struct {
	ReceiptNumber string          `json:"receipt_number"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	LRN           string          `json:"lrn"`
	FirstName     string          `json:"firstname"`
	LastName      string          `json:"lastname"`
	GradeLevel    GradeLevel      `json:"grade"`
	Track         string          `json:"track"`
	Strand        string          `json:"strand"`
}
