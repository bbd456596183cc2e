package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/enrollify/enrollment-api/models"
	"github.com/shopspring/decimal"
)

// seedDirectory creates a small mixed population: four Academic/STEM students
// and two on a strandless Sports Track, one of them already enrolled.
func seedDirectory(t *testing.T, catalog *CatalogService, students *StudentService) {
	t.Helper()

	seedAcademicTrack(t, catalog)
	if err := catalog.AddStrand("HUMSS", "Academic Track"); err != nil {
		t.Fatalf("AddStrand failed: %v", err)
	}
	if err := catalog.AddTrack("Sports Track", ""); err != nil {
		t.Fatalf("AddTrack failed: %v", err)
	}

	add := func(lrn, track, strand string, grade models.GradeLevel, gender models.Gender) {
		input := testStudentInput(lrn)
		input.Track = track
		input.Strand = strand
		input.GradeLevel = grade
		input.Gender = gender
		if _, err := students.AddStudent(input); err != nil {
			t.Fatalf("AddStudent(%s) failed: %v", lrn, err)
		}
	}

	add("100000000001", "Academic Track", "STEM", models.GradeEleven, models.GenderFemale)
	add("100000000002", "Academic Track", "STEM", models.GradeEleven, models.GenderMale)
	add("100000000003", "Academic Track", "STEM", models.GradeTwelve, models.GenderFemale)
	add("100000000004", "Academic Track", "HUMSS", models.GradeTwelve, models.GenderMale)
	add("100000000005", "Sports Track", "", models.GradeEleven, models.GenderMale)
	add("100000000006", "Sports Track", "", models.GradeTwelve, models.GenderFemale)

	if err := students.SetStatus("100000000001", models.StatusEnrolled); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
}

func TestCountGroups_SumToDirectorySize(t *testing.T) {
	db, catalog, students, _ := newTestServices(t)
	seedDirectory(t, catalog, students)
	stats := NewStatsService(db)

	byTrack, err := stats.CountByTrack()
	if err != nil {
		t.Fatalf("CountByTrack failed: %v", err)
	}
	byGrade, err := stats.CountByGrade()
	if err != nil {
		t.Fatalf("CountByGrade failed: %v", err)
	}
	byStatus, err := stats.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}

	sum := func(m map[string]int64) int64 {
		var total int64
		for _, n := range m {
			total += n
		}
		return total
	}
	for name, m := range map[string]map[string]int64{
		"track": byTrack, "grade": byGrade, "status": byStatus,
	} {
		if sum(m) != 6 {
			t.Errorf("%s counts sum to %d, want 6 (%v)", name, sum(m), m)
		}
	}

	if byTrack["Academic Track"] != 4 || byTrack["Sports Track"] != 2 {
		t.Errorf("CountByTrack = %v", byTrack)
	}
	if byGrade["Grade 11"] != 3 || byGrade["Grade 12"] != 3 {
		t.Errorf("CountByGrade = %v", byGrade)
	}
	if byStatus["Enrolled"] != 1 || byStatus["Pending"] != 5 {
		t.Errorf("CountByStatus = %v", byStatus)
	}
}

func TestGenderDistribution(t *testing.T) {
	db, catalog, students, _ := newTestServices(t)
	seedDirectory(t, catalog, students)
	stats := NewStatsService(db)

	dist, err := stats.GenderDistribution()
	if err != nil {
		t.Fatalf("GenderDistribution failed: %v", err)
	}
	if dist["Female"] != 3 || dist["Male"] != 3 {
		t.Errorf("GenderDistribution = %v", dist)
	}
}

func TestCountByStrand_SkipsEmptyAndHonorsTopN(t *testing.T) {
	db, catalog, students, _ := newTestServices(t)
	seedDirectory(t, catalog, students)
	stats := NewStatsService(db)

	all, err := stats.CountByStrand(0)
	if err != nil {
		t.Fatalf("CountByStrand failed: %v", err)
	}
	// The two strandless Sports Track students never appear.
	if len(all) != 2 || all["STEM"] != 3 || all["HUMSS"] != 1 {
		t.Errorf("CountByStrand(0) = %v", all)
	}

	top, err := stats.CountByStrand(1)
	if err != nil {
		t.Fatalf("CountByStrand failed: %v", err)
	}
	if len(top) != 1 || top["STEM"] != 3 {
		t.Errorf("CountByStrand(1) = %v, want only STEM", top)
	}
}

func TestCountByStrand_TieBreaksAlphabetically(t *testing.T) {
	db, catalog, students, _ := newTestServices(t)
	seedAcademicTrack(t, catalog)
	if err := catalog.AddStrand("ABM", "Academic Track"); err != nil {
		t.Fatalf("AddStrand failed: %v", err)
	}
	stats := NewStatsService(db)

	for i, strand := range []string{"STEM", "ABM"} {
		input := testStudentInput(fmt.Sprintf("10000000000%d", i+1))
		input.Strand = strand
		if _, err := students.AddStudent(input); err != nil {
			t.Fatalf("AddStudent failed: %v", err)
		}
	}

	top, err := stats.CountByStrand(1)
	if err != nil {
		t.Fatalf("CountByStrand failed: %v", err)
	}
	if len(top) != 1 || top["ABM"] != 1 {
		t.Errorf("CountByStrand(1) with tied counts = %v, want ABM first", top)
	}
}

func TestOverview(t *testing.T) {
	db, catalog, students, payments := newTestServices(t)
	seedDirectory(t, catalog, students)
	stats := NewStatsService(db)

	if _, _, err := payments.RecordPayment("100000000002", decimal.NewFromInt(10000), models.MethodCash); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if _, _, err := payments.RecordPayment("100000000003", decimal.RequireFromString("22500.50"), models.MethodGCash); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}

	overview, err := stats.Overview()
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if overview.TotalStudents != 6 {
		t.Errorf("TotalStudents = %d, want 6", overview.TotalStudents)
	}
	// One enrolled via SetStatus plus two via payment.
	if overview.Enrolled != 3 {
		t.Errorf("Enrolled = %d, want 3", overview.Enrolled)
	}
	if overview.Pending != 3 {
		t.Errorf("Pending = %d, want 3", overview.Pending)
	}
	if want := decimal.RequireFromString("32500.50"); !overview.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", overview.TotalRevenue, want)
	}
}

func TestOverview_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	stats := NewStatsService(db)

	overview, err := stats.Overview()
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if overview.TotalStudents != 0 || overview.Enrolled != 0 || overview.Pending != 0 {
		t.Errorf("Overview on empty database = %+v", overview)
	}
	if !overview.TotalRevenue.IsZero() {
		t.Errorf("TotalRevenue = %s, want 0", overview.TotalRevenue)
	}
}

func TestRecentEnrollments_Window(t *testing.T) {
	db, catalog, students, _ := newTestServices(t)
	seedAcademicTrack(t, catalog)
	stats := NewStatsService(db)

	if _, err := students.AddStudent(testStudentInput("100000000001")); err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}
	if _, err := students.AddStudent(testStudentInput("100000000002")); err != nil {
		t.Fatalf("AddStudent failed: %v", err)
	}
	// Push one record outside the 7-day window.
	if err := db.Model(&models.Student{}).Where("lrn = ?", "100000000002").
		Update("created_at", time.Now().AddDate(0, 0, -30)).Error; err != nil {
		t.Fatalf("backdate failed: %v", err)
	}

	recent, err := stats.RecentEnrollments(7)
	if err != nil {
		t.Fatalf("RecentEnrollments failed: %v", err)
	}
	if recent != 1 {
		t.Errorf("RecentEnrollments(7) = %d, want 1", recent)
	}

	wide, err := stats.RecentEnrollments(60)
	if err != nil {
		t.Fatalf("RecentEnrollments failed: %v", err)
	}
	if wide != 2 {
		t.Errorf("RecentEnrollments(60) = %d, want 2", wide)
	}
}
