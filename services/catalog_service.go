package services

import (
	"errors"
	"fmt"

	"github.com/enrollify/enrollment-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fallback breakdown used whenever a (track, strand) pair has no fee entry.
// Billing deliberately never blocks on missing catalog data.
var (
	fallbackEnrollmentFee    = decimal.NewFromInt(5000)
	fallbackMiscellaneousFee = decimal.NewFromInt(4500)
	fallbackTuitionFee       = decimal.NewFromInt(15000)
	fallbackSpecialFee       = decimal.NewFromInt(2000)
)

// CatalogService owns tracks, strands, and the fee schedule.
type CatalogService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewCatalogService(db *gorm.DB, audit *AuditService) *CatalogService {
	return &CatalogService{DB: db, Audit: audit}
}

func (s *CatalogService) AddTrack(name, description string) error {
	track := models.Track{Name: name, Description: description}
	if err := s.DB.Create(&track).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("track %q: %w", name, models.ErrDuplicateKey)
		}
		return err
	}
	s.Audit.Log(nil, "ADD_TRACK", fmt.Sprintf("Added track: %s", name))
	return nil
}

// RemoveTrack deletes a track unless any student still references it. The
// guard is an application-level count, not a foreign key.
func (s *CatalogService) RemoveTrack(name string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var inUse int64
		if err := tx.Model(&models.Student{}).Where("track = ?", name).Count(&inUse).Error; err != nil {
			return err
		}
		if inUse > 0 {
			return models.ErrTrackInUse
		}

		result := tx.Delete(&models.Track{}, "name = ?", name)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("track %q: %w", name, models.ErrNotFound)
		}
		return tx.Delete(&models.Strand{}, "track = ?", name).Error
	})
	if err != nil {
		return err
	}
	s.Audit.Log(nil, "REMOVE_TRACK", fmt.Sprintf("Removed track: %s", name))
	return nil
}

func (s *CatalogService) IsValidTrack(name string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Track{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListTracks returns all track names ordered by name.
func (s *CatalogService) ListTracks() ([]string, error) {
	var names []string
	err := s.DB.Model(&models.Track{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *CatalogService) AddStrand(name, track string) error {
	valid, err := s.IsValidTrack(track)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("strand %q: %w", name, models.ErrInvalidTrack)
	}

	strand := models.Strand{Name: name, Track: track}
	if err := s.DB.Create(&strand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("strand %q: %w", name, models.ErrDuplicateKey)
		}
		return err
	}
	return nil
}

func (s *CatalogService) RemoveStrand(name, track string) error {
	result := s.DB.Delete(&models.Strand{}, "name = ? AND track = ?", name, track)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("strand %q: %w", name, models.ErrNotFound)
	}
	return nil
}

// ListStrands returns strand names for a track ordered by name. An empty
// result is valid; callers fall back to free-text strand entry.
func (s *CatalogService) ListStrands(track string) ([]string, error) {
	var names []string
	err := s.DB.Model(&models.Strand{}).Where("track = ?", track).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ListAllStrands returns the distinct strand names across every track.
func (s *CatalogService) ListAllStrands() ([]string, error) {
	var names []string
	err := s.DB.Model(&models.Strand{}).Distinct("name").Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// GetFees returns the fee breakdown for (track, strand). Missing entries and
// lookup failures both yield the fixed fallback breakdown.
func (s *CatalogService) GetFees(track, strand string) models.FeeBreakdown {
	var entry models.FeeSchedule
	err := s.DB.Where("track = ? AND strand = ?", track, strand).First(&entry).Error
	if err != nil {
		return models.FeeBreakdown{
			EnrollmentFee:    fallbackEnrollmentFee,
			MiscellaneousFee: fallbackMiscellaneousFee,
			TuitionFee:       fallbackTuitionFee,
			SpecialFee:       fallbackSpecialFee,
			Total: fallbackEnrollmentFee.Add(fallbackMiscellaneousFee).
				Add(fallbackTuitionFee).Add(fallbackSpecialFee),
		}
	}

	return models.FeeBreakdown{
		EnrollmentFee:    entry.EnrollmentFee,
		MiscellaneousFee: entry.MiscellaneousFee,
		TuitionFee:       entry.TuitionFee,
		SpecialFee:       entry.SpecialFee,
		Total: entry.EnrollmentFee.Add(entry.MiscellaneousFee).
			Add(entry.TuitionFee).Add(entry.SpecialFee),
	}
}

// SetFees creates or replaces the fee entry for (track, strand).
func (s *CatalogService) SetFees(track, strand string, enrollment, miscellaneous, tuition, special decimal.Decimal) error {
	valid, err := s.IsValidTrack(track)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("fees for %q: %w", track, models.ErrInvalidTrack)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.FeeSchedule
		err := tx.Where("track = ? AND strand = ?", track, strand).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err == nil {
			existing.EnrollmentFee = enrollment
			existing.MiscellaneousFee = miscellaneous
			existing.TuitionFee = tuition
			existing.SpecialFee = special
			return tx.Save(&existing).Error
		}

		entry := models.FeeSchedule{
			Track:            track,
			Strand:           strand,
			EnrollmentFee:    enrollment,
			MiscellaneousFee: miscellaneous,
			TuitionFee:       tuition,
			SpecialFee:       special,
		}
		return tx.Create(&entry).Error
	})
}
