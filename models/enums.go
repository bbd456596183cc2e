package models

// GradeLevel is the senior-high grade a student is enrolling into.
type GradeLevel string

const (
	GradeEleven GradeLevel = "Grade 11"
	GradeTwelve GradeLevel = "Grade 12"
)

func (g GradeLevel) Valid() bool {
	return g == GradeEleven || g == GradeTwelve
}

// EnrollmentStatus represents the lifecycle of a student record.
type EnrollmentStatus string

const (
	StatusPending   EnrollmentStatus = "Pending"
	StatusEnrolled  EnrollmentStatus = "Enrolled"
	StatusCancelled EnrollmentStatus = "Cancelled"
	StatusDropped   EnrollmentStatus = "Dropped"
	StatusRejected  EnrollmentStatus = "Rejected"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusEnrolled, StatusCancelled, StatusDropped, StatusRejected:
		return true
	}
	return false
}

// Gender as captured on the enrollment form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// PaymentMethod is how a payment was settled at the cashier.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodDebitCard    PaymentMethod = "Debit Card"
	MethodGCash        PaymentMethod = "GCash"
	MethodPayMaya      PaymentMethod = "PayMaya"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodGCash, MethodPayMaya, MethodBankTransfer:
		return true
	}
	return false
}

// Role of a system user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleStudent
}
