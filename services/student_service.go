package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/enrollify/enrollment-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var lrnPattern = regexp.MustCompile(`^[0-9]{12}$`)

// StudentInput carries the mutable fields of a student record. LRN is only
// read on create; updates never touch it.
type StudentInput struct {
	LRN             string
	FirstName       string
	MiddleName      string
	LastName        string
	Gender          models.Gender
	BirthDate       time.Time
	Email           string
	Phone           string
	Address         string
	GradeLevel      models.GradeLevel
	Track           string
	Strand          string
	GuardianName    string
	GuardianContact string
}

// StudentService owns the student directory: records, enrollment status, and
// staff assignment. Track and strand values are validated against the
// catalog on every write.
type StudentService struct {
	DB      *gorm.DB
	Catalog *CatalogService
	Audit   *AuditService
}

func NewStudentService(db *gorm.DB, catalog *CatalogService, audit *AuditService) *StudentService {
	return &StudentService{DB: db, Catalog: catalog, Audit: audit}
}

func (s *StudentService) validateInput(in StudentInput) error {
	valid, err := s.Catalog.IsValidTrack(in.Track)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("track %q: %w", in.Track, models.ErrInvalidTrack)
	}

	// Tracks with enumerated strands require one of them; strandless tracks
	// accept free-text (or empty) strand values.
	strands, err := s.Catalog.ListStrands(in.Track)
	if err != nil {
		return err
	}
	if len(strands) > 0 {
		found := false
		for _, name := range strands {
			if name == in.Strand {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("strand %q not offered under track %q: %w", in.Strand, in.Track, models.ErrInvalidTrack)
		}
	}

	if !in.Gender.Valid() {
		return fmt.Errorf("gender %q: %w", in.Gender, models.ErrInvalidStatus)
	}
	if !in.GradeLevel.Valid() {
		return fmt.Errorf("grade %q: %w", in.GradeLevel, models.ErrInvalidStatus)
	}
	return nil
}

// AddStudent persists a new record with status Pending.
func (s *StudentService) AddStudent(in StudentInput) (*models.Student, error) {
	if !lrnPattern.MatchString(in.LRN) {
		return nil, fmt.Errorf("lrn %q: %w", in.LRN, models.ErrInvalidLRN)
	}
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	student := models.Student{
		LRN:              in.LRN,
		FirstName:        in.FirstName,
		MiddleName:       in.MiddleName,
		LastName:         in.LastName,
		Gender:           in.Gender,
		BirthDate:        in.BirthDate,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		GradeLevel:       in.GradeLevel,
		Track:            in.Track,
		Strand:           in.Strand,
		GuardianName:     in.GuardianName,
		GuardianContact:  in.GuardianContact,
		EnrollmentStatus: models.StatusPending,
	}
	if err := s.DB.Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("lrn %s: %w", in.LRN, models.ErrDuplicateKey)
		}
		return nil, err
	}

	s.Audit.Log(nil, "ADD_STUDENT", fmt.Sprintf("Added student: %s", student.LRN))
	return &student, nil
}

// UpdateStudent overwrites the mutable fields of an existing record. LRN,
// status, staff assignment, and created_at are untouched.
func (s *StudentService) UpdateStudent(lrn string, in StudentInput) (*models.Student, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	var student models.Student
	if err := s.DB.Where("lrn = ?", lrn).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lrn %s: %w", lrn, models.ErrNotFound)
		}
		return nil, err
	}

	student.FirstName = in.FirstName
	student.MiddleName = in.MiddleName
	student.LastName = in.LastName
	student.Gender = in.Gender
	student.BirthDate = in.BirthDate
	student.Email = in.Email
	student.Phone = in.Phone
	student.Address = in.Address
	student.GradeLevel = in.GradeLevel
	student.Track = in.Track
	student.Strand = in.Strand
	student.GuardianName = in.GuardianName
	student.GuardianContact = in.GuardianContact

	if err := s.DB.Save(&student).Error; err != nil {
		return nil, err
	}

	s.Audit.Log(nil, "UPDATE_STUDENT", fmt.Sprintf("Updated student: %s", lrn))
	return &student, nil
}

// DeleteStudent removes a student and every payment referencing that LRN.
func (s *StudentService) DeleteStudent(lrn string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.Where("lrn = ?", lrn).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lrn %s: %w", lrn, models.ErrNotFound)
			}
			return err
		}
		if err := tx.Delete(&models.Payment{}, "lrn = ?", lrn).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return err
	}

	s.Audit.Log(nil, "DELETE_STUDENT", fmt.Sprintf("Deleted student: %s", lrn))
	return nil
}

// SetStatus moves a student to the given enrollment status.
func (s *StudentService) SetStatus(lrn string, status models.EnrollmentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, models.ErrInvalidStatus)
	}

	result := s.DB.Model(&models.Student{}).Where("lrn = ?", lrn).
		Update("enrollment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lrn %s: %w", lrn, models.ErrNotFound)
	}

	s.Audit.Log(nil, "UPDATE_STATUS", fmt.Sprintf("Changed status for %s to %s", lrn, status))
	return nil
}

// AssignToStaff points the student's weak staff reference at the given user.
// The staff email is denormalized onto the student row, as the source schema
// carries it.
func (s *StudentService) AssignToStaff(lrn string, staffID uuid.UUID) error {
	var staff models.User
	if err := s.DB.Where("id = ?", staffID).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("staff %s: %w", staffID, models.ErrNotFound)
		}
		return err
	}

	result := s.DB.Model(&models.Student{}).Where("lrn = ?", lrn).Updates(map[string]interface{}{
		"assigned_staff_id":    staffID,
		"assigned_staff_email": staff.Email,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lrn %s: %w", lrn, models.ErrNotFound)
	}

	s.Audit.Log(&staff.Email, "ASSIGN_STUDENT", fmt.Sprintf("Assigned student %s to staff %s", lrn, staff.Email))
	return nil
}

func (s *StudentService) Unassign(lrn string) error {
	result := s.DB.Model(&models.Student{}).Where("lrn = ?", lrn).Updates(map[string]interface{}{
		"assigned_staff_id":    nil,
		"assigned_staff_email": nil,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lrn %s: %w", lrn, models.ErrNotFound)
	}

	s.Audit.Log(nil, "UNASSIGN_STUDENT", fmt.Sprintf("Removed staff assignment for %s", lrn))
	return nil
}

func (s *StudentService) Find(lrn string) (*models.Student, error) {
	var student models.Student
	if err := s.DB.Where("lrn = ?", lrn).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lrn %s: %w", lrn, models.ErrNotFound)
		}
		return nil, err
	}
	return &student, nil
}

// FindAll lists the directory ordered by last name, then first name.
func (s *StudentService) FindAll() ([]models.Student, error) {
	var students []models.Student
	err := s.DB.Order("lastname, firstname").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// Search matches LRN or first/last name, case-insensitive substring,
// newest records first.
func (s *StudentService) Search(query string) ([]models.Student, error) {
	pattern := "%" + query + "%"
	var students []models.Student
	err := s.DB.
		Where("lrn LIKE ? OR LOWER(firstname) LIKE LOWER(?) OR LOWER(lastname) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// Filter narrows the directory by any combination of grade, track, and
// status, newest records first.
func (s *StudentService) Filter(filter models.StudentFilter) ([]models.Student, error) {
	query := s.DB.Model(&models.Student{})
	if filter.Grade != "" {
		query = query.Where("grade_level = ?", filter.Grade)
	}
	if filter.Track != "" {
		query = query.Where("track = ?", filter.Track)
	}
	if filter.Status != "" {
		query = query.Where("enrollment_status = ?", filter.Status)
	}

	var students []models.Student
	err := query.Order("created_at DESC").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// ListByStaff returns the students assigned to one staff user.
func (s *StudentService) ListByStaff(staffID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := s.DB.Where("assigned_staff_id = ?", staffID).
		Order("created_at DESC").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (s *StudentService) ListUnassigned() ([]models.Student, error) {
	var students []models.Student
	err := s.DB.Where("assigned_staff_id IS NULL").
		Order("created_at DESC").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (s *StudentService) StaffStudentCount(staffID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Student{}).
		Where("assigned_staff_id = ?", staffID).Count(&count).Error
	return count, err
}
