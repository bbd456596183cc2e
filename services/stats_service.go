package services

import (
	"time"

	"github.com/enrollify/enrollment-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Overview is the dashboard headline block. TotalRevenue sums every payment
// regardless of the payer's current status.
type Overview struct {
	TotalStudents int64           `json:"total_students"`
	Enrolled      int64           `json:"enrolled"`
	Pending       int64           `json:"pending"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// StatsService computes read-only aggregations over the student directory.
// Every call recomputes from storage; nothing is cached.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type categoryCount struct {
	Label string
	Count int64
}

func (s *StatsService) countGrouped(column, where string) (map[string]int64, error) {
	query := s.DB.Model(&models.Student{}).
		Select(column + " AS label, COUNT(*) AS count").
		Group(column)
	if where != "" {
		query = query.Where(where)
	}

	var rows []categoryCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return counts, nil
}

func (s *StatsService) CountByTrack() (map[string]int64, error) {
	return s.countGrouped("track", "")
}

func (s *StatsService) CountByGrade() (map[string]int64, error) {
	return s.countGrouped("grade_level", "")
}

func (s *StatsService) CountByStatus() (map[string]int64, error) {
	return s.countGrouped("enrollment_status", "")
}

func (s *StatsService) GenderDistribution() (map[string]int64, error) {
	return s.countGrouped("gender", "gender IS NOT NULL AND TRIM(gender) != ''")
}

// CountByStrand counts students per non-empty strand. topN > 0 keeps only
// the highest counts; equal counts order alphabetically by strand.
func (s *StatsService) CountByStrand(topN int) (map[string]int64, error) {
	query := s.DB.Model(&models.Student{}).
		Select("strand AS label, COUNT(*) AS count").
		Where("strand IS NOT NULL AND strand != ''").
		Group("strand").
		Order("count DESC, strand ASC")
	if topN > 0 {
		query = query.Limit(topN)
	}

	var rows []categoryCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return counts, nil
}

func (s *StatsService) Overview() (*Overview, error) {
	var overview Overview

	if err := s.DB.Model(&models.Student{}).Count(&overview.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Student{}).
		Where("enrollment_status = ?", models.StatusEnrolled).
		Count(&overview.Enrolled).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Student{}).
		Where("enrollment_status = ?", models.StatusPending).
		Count(&overview.Pending).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total decimal.Decimal }
	err := s.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	overview.TotalRevenue = revenue.Total

	return &overview, nil
}

// RecentEnrollments counts students created within the trailing days-day
// window.
func (s *StatsService) RecentEnrollments(days int) (int64, error) {
	since := time.Now().AddDate(0, 0, -days)
	var count int64
	err := s.DB.Model(&models.Student{}).
		Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
