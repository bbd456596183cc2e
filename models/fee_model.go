package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeeSchedule prices a (track, strand) combination. Strand is stored as the
// empty string for tracks that have no strand, so the composite unique index
// keeps (track, "") a single row.
type FeeSchedule struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Track            string          `gorm:"size:100;not null;uniqueIndex:idx_fee_track_strand" json:"track"`
	Strand           string          `gorm:"size:100;not null;default:'';uniqueIndex:idx_fee_track_strand" json:"strand"`
	EnrollmentFee    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"enrollment_fee"`
	MiscellaneousFee decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"miscellaneous_fee"`
	TuitionFee       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tuition_fee"`
	SpecialFee       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"special_fee"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *FeeSchedule) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FeeBreakdown is the quote handed to callers.
type FeeBreakdown struct {
	EnrollmentFee    decimal.Decimal `json:"enrollment_fee"`
	MiscellaneousFee decimal.Decimal `json:"miscellaneous_fee"`
	TuitionFee       decimal.Decimal `json:"tuition_fee"`
	SpecialFee       decimal.Decimal `json:"special_fee"`
	Total            decimal.Decimal `json:"total"`
}
