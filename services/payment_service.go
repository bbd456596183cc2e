package services

import (
	"errors"
	"fmt"

	"github.com/enrollify/enrollment-api/models"
	"github.com/enrollify/enrollment-api/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const receiptSearchLimit = 50

// PaymentService records payments and flips the paying student to Enrolled.
// Payments are immutable once written.
type PaymentService struct {
	DB    *gorm.DB
	Fees  *FeeService
	Audit *AuditService
}

func NewPaymentService(db *gorm.DB, fees *FeeService, audit *AuditService) *PaymentService {
	return &PaymentService{DB: db, Fees: fees, Audit: audit}
}

// RecordPayment persists a payment and sets the student's status to Enrolled
// in one transaction: neither side effect commits without the other. Any
// positive amount fully enrolls the student, even a partial one; the caller
// gets the current quote back alongside the payment for balance display.
func (s *PaymentService) RecordPayment(lrn string, amount decimal.Decimal, method models.PaymentMethod) (*models.Payment, models.FeeBreakdown, error) {
	if !method.Valid() {
		return nil, models.FeeBreakdown{}, fmt.Errorf("payment method %q: %w", method, models.ErrInvalidStatus)
	}
	if !amount.IsPositive() {
		return nil, models.FeeBreakdown{}, fmt.Errorf("payment amount must be positive: %w", models.ErrInvalidStatus)
	}

	var payment models.Payment
	var quote models.FeeBreakdown
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.Where("lrn = ?", lrn).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lrn %s: %w", lrn, models.ErrStudentNotFound)
			}
			return err
		}

		receiptNumber, err := utils.GenerateReceiptNumber(tx)
		if err != nil {
			return err
		}

		payment = models.Payment{
			StudentID:     student.ID,
			LRN:           student.LRN,
			Amount:        amount,
			PaymentMethod: method,
			ReceiptNumber: receiptNumber,
		}
		if err := tx.Create(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("receipt %s: %w", receiptNumber, models.ErrDuplicateKey)
			}
			return err
		}

		if err := tx.Model(&models.Student{}).Where("lrn = ?", lrn).
			Update("enrollment_status", models.StatusEnrolled).Error; err != nil {
			return err
		}

		quote = s.Fees.Quote(student.Track, student.Strand)
		return nil
	})
	if err != nil {
		return nil, models.FeeBreakdown{}, err
	}

	s.Audit.Log(nil, "ADD_PAYMENT",
		fmt.Sprintf("Payment received for LRN: %s, Receipt: %s", lrn, payment.ReceiptNumber))
	return &payment, quote, nil
}

// GetByLRN lists a student's payments, newest first.
func (s *PaymentService) GetByLRN(lrn string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Where("lrn = ?", lrn).Order("payment_date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// GetReceipt joins the payment with the student's record as it stands now.
// A student renamed after paying shows the new name on the receipt.
func (s *PaymentService) GetReceipt(receiptNumber string) (*models.Receipt, error) {
	var payment models.Payment
	if err := s.DB.Where("receipt_number = ?", receiptNumber).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("receipt %s: %w", receiptNumber, models.ErrNotFound)
		}
		return nil, err
	}

	var student models.Student
	if err := s.DB.Where("lrn = ?", payment.LRN).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("receipt %s: %w", receiptNumber, models.ErrNotFound)
		}
		return nil, err
	}

	return &models.Receipt{
		ReceiptNumber: payment.ReceiptNumber,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		PaymentDate:   payment.PaymentDate,
		LRN:           student.LRN,
		FirstName:     student.FirstName,
		LastName:      student.LastName,
		GradeLevel:    student.GradeLevel,
		Track:         student.Track,
		Strand:        student.Strand,
	}, nil
}

// SearchReceipts matches receipt number, LRN, or student name, capped at 50
// results, newest first.
func (s *PaymentService) SearchReceipts(query string) ([]models.Receipt, error) {
	pattern := "%" + query + "%"
	var receipts []models.Receipt
	err := s.DB.Model(&models.Payment{}).
		Select(`payments.receipt_number, payments.amount, payments.payment_method,
			payments.payment_date, students.lrn, students.firstname AS first_name, students.lastname AS last_name,
			students.grade_level, students.track, students.strand`).
		Joins("JOIN students ON students.lrn = payments.lrn").
		Where(`payments.receipt_number LIKE ? OR payments.lrn LIKE ?
			OR LOWER(students.firstname) LIKE LOWER(?) OR LOWER(students.lastname) LIKE LOWER(?)`,
			pattern, pattern, pattern, pattern).
		Order("payments.payment_date DESC").
		Limit(receiptSearchLimit).
		Scan(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// ListReceipts returns the newest receipts, capped at limit (default 100).
func (s *PaymentService) ListReceipts(limit int) ([]models.Receipt, error) {
	if limit <= 0 {
		limit = 100
	}
	var receipts []models.Receipt
	err := s.DB.Model(&models.Payment{}).
		Select(`payments.receipt_number, payments.amount, payments.payment_method,
			payments.payment_date, students.lrn, students.firstname AS first_name, students.lastname AS last_name,
			students.grade_level, students.track, students.strand`).
		Joins("JOIN students ON students.lrn = payments.lrn").
		Order("payments.payment_date DESC").
		Limit(limit).
		Scan(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}
