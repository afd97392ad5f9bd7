package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"clinic-backend/internal/domain/entity"
	repoimpl "clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newPaymentUsecase(db *gorm.DB) PaymentUsecase {
	log := newTestLogger()
	resolver := service.NewPatientResolver(log, repoimpl.NewPatientRepository())
	auditService := service.NewAuditService(log, repoimpl.NewAuditLogRepository())
	return NewPaymentUsecase(db, log, repoimpl.NewPaymentRepository(), resolver, auditService)
}

// createTestPayment mimics what the database trigger does on order
// insert; the test database has no trigger.
func createTestPayment(t *testing.T, db *gorm.DB, patientID, doctorID int64, amount string) *entity.Payment {
	t.Helper()

	appointment := &entity.Appointment{
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:  fmt.Sprintf("slot-%d", patientID),
		Mode:      entity.AppointmentModeOnline,
		Status:    entity.AppointmentStatusCompleted,
		PatientID: patientID,
		DoctorID:  doctorID,
	}
	if err := db.Create(appointment).Error; err != nil {
		t.Fatalf("failed to create test appointment: %v", err)
	}
	prescription := &entity.Prescription{Date: appointment.Date, AppointmentID: appointment.ID}
	if err := db.Create(prescription).Error; err != nil {
		t.Fatalf("failed to create test prescription: %v", err)
	}

	order := &entity.PharmacyOrder{
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:         entity.OrderStatusPending,
		PatientID:      patientID,
		PrescriptionID: prescription.ID,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	payment := &entity.Payment{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString(amount),
		Status:  entity.PaymentStatusPending,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}

func TestGetMyPaymentsScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	uc := newPaymentUsecase(db)

	alice := createTestUser(t, db, "alice")
	alicePatient := createTestPatient(t, db, alice.ID, "Alice Young")
	bob := createTestUser(t, db, "bob")
	bobPatient := createTestPatient(t, db, bob.ID, "Bob Stone")
	doctor := createTestDoctor(t, db, "Dr. House")

	alicePayment := createTestPayment(t, db, alicePatient.ID, doctor.ID, "120.00")
	createTestPayment(t, db, bobPatient.ID, doctor.ID, "45.50")

	list, err := uc.GetMyPayments(ctxWithUser(alice.ID))
	if err != nil {
		t.Fatalf("GetMyPayments failed: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}
	if list.Payments[0].ID != alicePayment.ID {
		t.Errorf("payment_id = %d, want %d", list.Payments[0].ID, alicePayment.ID)
	}
	if !list.Payments[0].Amount.Equal(decimal.RequireFromString("120.00")) {
		t.Errorf("amount = %s, want 120.00", list.Payments[0].Amount)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := newTestDB(t)
	uc := newPaymentUsecase(db)

	admin := createTestUser(t, db, "admin")
	user := createTestUser(t, db, "carol")
	patient := createTestPatient(t, db, user.ID, "Carol Reed")
	doctor := createTestDoctor(t, db, "Dr. Grey")
	payment := createTestPayment(t, db, patient.ID, doctor.ID, "60.00")

	if err := uc.UpdateStatus(ctxWithUser(admin.ID), payment.ID, entity.PaymentStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	var updated entity.Payment
	if err := db.First(&updated, payment.ID).Error; err != nil {
		t.Fatalf("failed to load payment: %v", err)
	}
	if updated.Status != entity.PaymentStatusCompleted {
		t.Errorf("status = %q, want Completed", updated.Status)
	}

	err := uc.UpdateStatus(ctxWithUser(admin.ID), 9999, entity.PaymentStatusFailed)
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("error = %v, want ErrPaymentNotFound", err)
	}
}
