package handlers

import (
	"time"

	"github.com/enrollify/enrollment-api/models"
	"github.com/enrollify/enrollment-api/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StudentHandler struct {
	Students *services.StudentService
}

func NewStudentHandler(students *services.StudentService) *StudentHandler {
	return &StudentHandler{Students: students}
}

type StudentRequest struct {
	LRN             string `json:"lrn" validate:"required"`
	FirstName       string `json:"firstname" validate:"required,min=2,max=50"`
	MiddleName      string `json:"middlename" validate:"max=50"`
	LastName        string `json:"lastname" validate:"required,min=2,max=50"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female"`
	BirthDate       string `json:"birthdate" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Grade           string `json:"grade" validate:"required,oneof='Grade 11' 'Grade 12'"`
	Track           string `json:"track" validate:"required"`
	Strand          string `json:"strand"`
	GuardianName    string `json:"guardian_name"`
	GuardianContact string `json:"guardian_contact"`
}

func (r StudentRequest) toInput() (services.StudentInput, error) {
	birthDate, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return services.StudentInput{}, err
	}
	return services.StudentInput{
		LRN:             r.LRN,
		FirstName:       r.FirstName,
		MiddleName:      r.MiddleName,
		LastName:        r.LastName,
		Gender:          models.Gender(r.Gender),
		BirthDate:       birthDate,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		GradeLevel:      models.GradeLevel(r.Grade),
		Track:           r.Track,
		Strand:          r.Strand,
		GuardianName:    r.GuardianName,
		GuardianContact: r.GuardianContact,
	}, nil
}

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid birthdate (use YYYY-MM-DD)"})
	}

	student, err := h.Students.AddStudent(input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	req.LRN = c.Params("lrn")
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input, err := req.toInput()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid birthdate (use YYYY-MM-DD)"})
	}

	student, err := h.Students.UpdateStudent(c.Params("lrn"), input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(student)
}

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	if err := h.Students.DeleteStudent(c.Params("lrn")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}

func (h *StudentHandler) Get(c *fiber.Ctx) error {
	student, err := h.Students.Find(c.Params("lrn"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(student)
}

// List serves the directory. A search query takes precedence; otherwise any
// grade/track/status filters apply; otherwise the full roster, ordered by
// last name then first name.
func (h *StudentHandler) List(c *fiber.Ctx) error {
	if query := c.Query("search"); query != "" {
		students, err := h.Students.Search(query)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(students)
	}

	filter := models.StudentFilter{
		Grade:  models.GradeLevel(c.Query("grade")),
		Track:  c.Query("track"),
		Status: models.EnrollmentStatus(c.Query("status")),
	}
	if filter.Grade != "" || filter.Track != "" || filter.Status != "" {
		students, err := h.Students.Filter(filter)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(students)
	}

	students, err := h.Students.FindAll()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(students)
}

func (h *StudentHandler) SetStatus(c *fiber.Ctx) error {
	type Request struct {
		Status string `json:"status" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.Students.SetStatus(c.Params("lrn"), models.EnrollmentStatus(req.Status)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}

func (h *StudentHandler) Assign(c *fiber.Ctx) error {
	type Request struct {
		StaffID string `json:"staff_id" validate:"required,uuid4"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid staff ID format"})
	}

	if err := h.Students.AssignToStaff(c.Params("lrn"), staffID); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student assigned"})
}

func (h *StudentHandler) Unassign(c *fiber.Ctx) error {
	if err := h.Students.Unassign(c.Params("lrn")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student unassigned"})
}

func (h *StudentHandler) ListByStaff(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid staff ID format"})
	}

	students, err := h.Students.ListByStaff(staffID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(students)
}

func (h *StudentHandler) ListUnassigned(c *fiber.Ctx) error {
	students, err := h.Students.ListUnassigned()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(students)
}
