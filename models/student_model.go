package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LRN        string    `gorm:"size:12;not null;unique" json:"lrn"`
	FirstName  string    `gorm:"column:firstname;size:50;not null" json:"firstname"`
	MiddleName string    `gorm:"column:middlename;size:50" json:"middlename"`
	LastName   string    `gorm:"column:lastname;size:50;not null" json:"lastname"`
	Gender     Gender    `gorm:"size:10;not null" json:"gender"`
	BirthDate  time.Time `gorm:"column:birthdate;not null" json:"birthdate"`
	Email      string    `gorm:"size:255" json:"email"`
	Phone      string    `gorm:"size:30" json:"phone"`
	Address    string    `gorm:"type:text" json:"address"`

	GradeLevel GradeLevel `gorm:"size:20;not null" json:"grade"`
	Track      string     `gorm:"size:100;not null" json:"track"`
	Strand     string     `gorm:"size:100" json:"strand"`

	GuardianName    string `gorm:"size:100" json:"guardian_name"`
	GuardianContact string `gorm:"size:30" json:"guardian_contact"`

	EnrollmentStatus EnrollmentStatus `gorm:"size:20;not null;default:'Pending'" json:"status"`

	// Weak reference to the staff user handling this enrollee.
	AssignedStaffID    *uuid.UUID `gorm:"type:uuid" json:"assigned_staff_id,omitempty"`
	AssignedStaffEmail *string    `gorm:"size:255" json:"assigned_staff_email,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StudentFilter narrows directory listings. Zero values mean "no filter".
type StudentFilter struct {
	Grade  GradeLevel
	Track  string
	Status EnrollmentStatus
}
