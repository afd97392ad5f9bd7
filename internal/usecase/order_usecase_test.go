package usecase

import (
	"errors"
	"testing"
	"time"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	repoimpl "clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"gorm.io/gorm"
)

func newOrderUsecase(db *gorm.DB) OrderUsecase {
	log := newTestLogger()
	resolver := service.NewPatientResolver(log, repoimpl.NewPatientRepository())
	auditService := service.NewAuditService(log, repoimpl.NewAuditLogRepository())
	return NewOrderUsecase(
		db,
		log,
		repoimpl.NewOrderRepository(),
		repoimpl.NewPrescriptionRepository(),
		repoimpl.NewPaymentRepository(),
		resolver,
		auditService,
	)
}

func createTestPrescription(t *testing.T, db *gorm.DB, patientID, doctorID int64) *entity.Prescription {
	t.Helper()

	appointment := &entity.Appointment{
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "10:00-10:30",
		Mode:      entity.AppointmentModeOnline,
		Status:    entity.AppointmentStatusCompleted,
		PatientID: patientID,
		DoctorID:  doctorID,
	}
	if err := db.Create(appointment).Error; err != nil {
		t.Fatalf("failed to create test appointment: %v", err)
	}

	prescription := &entity.Prescription{
		Date:          appointment.Date,
		AppointmentID: appointment.ID,
	}
	if err := db.Create(prescription).Error; err != nil {
		t.Fatalf("failed to create test prescription: %v", err)
	}
	return prescription
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)

	user := createTestUser(t, db, "alice")
	patient := createTestPatient(t, db, user.ID, "Alice Young")
	doctor := createTestDoctor(t, db, "Dr. House")
	prescription := createTestPrescription(t, db, patient.ID, doctor.ID)

	resp, err := uc.Create(ctxWithUser(user.ID), &dto.CreateOrderRequest{
		PrescriptionID: prescription.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp.OrderID == 0 {
		t.Fatal("expected non-zero order ID")
	}

	var order entity.PharmacyOrder
	if err := db.First(&order, resp.OrderID).Error; err != nil {
		t.Fatalf("failed to load order: %v", err)
	}
	if order.Status != entity.OrderStatusPending {
		t.Errorf("status = %q, want Pending", order.Status)
	}
	if order.PatientID != patient.ID {
		t.Errorf("patient_id = %d, want %d", order.PatientID, patient.ID)
	}
	if order.PrescriptionID != prescription.ID {
		t.Errorf("prescription_id = %d, want %d", order.PrescriptionID, prescription.ID)
	}
}

func TestCreateOrderForeignPrescription(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)

	alice := createTestUser(t, db, "alice")
	alicePatient := createTestPatient(t, db, alice.ID, "Alice Young")
	doctor := createTestDoctor(t, db, "Dr. House")
	prescription := createTestPrescription(t, db, alicePatient.ID, doctor.ID)

	bob := createTestUser(t, db, "bob")
	createTestPatient(t, db, bob.ID, "Bob Stone")

	_, err := uc.Create(ctxWithUser(bob.ID), &dto.CreateOrderRequest{
		PrescriptionID: prescription.ID,
	})
	if !errors.Is(err, ErrPrescriptionNotOwned) {
		t.Fatalf("error = %v, want ErrPrescriptionNotOwned", err)
	}

	var count int64
	db.Model(&entity.PharmacyOrder{}).Count(&count)
	if count != 0 {
		t.Errorf("order count = %d, want 0", count)
	}
}

func TestCreateOrderWithoutPatientRecord(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)

	// Users never get a patient record lazily created on the order path.
	user := createTestUser(t, db, "carol")

	_, err := uc.Create(ctxWithUser(user.ID), &dto.CreateOrderRequest{
		PrescriptionID: 1,
	})
	if !errors.Is(err, service.ErrPatientNotFound) {
		t.Fatalf("error = %v, want ErrPatientNotFound", err)
	}
}

func TestCreateOrderUnknownPrescription(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)

	user := createTestUser(t, db, "dave")
	createTestPatient(t, db, user.ID, "Dave Hill")

	_, err := uc.Create(ctxWithUser(user.ID), &dto.CreateOrderRequest{
		PrescriptionID: 4242,
	})
	if !errors.Is(err, ErrPrescriptionNotOwned) {
		t.Fatalf("error = %v, want ErrPrescriptionNotOwned", err)
	}
}

func TestGetMyOrdersScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	uc := newOrderUsecase(db)

	alice := createTestUser(t, db, "alice")
	alicePatient := createTestPatient(t, db, alice.ID, "Alice Young")
	bob := createTestUser(t, db, "bob")
	bobPatient := createTestPatient(t, db, bob.ID, "Bob Stone")
	doctor := createTestDoctor(t, db, "Dr. Grey")

	alicePrescription := createTestPrescription(t, db, alicePatient.ID, doctor.ID)
	bobAppointment := &entity.Appointment{
		Date:      time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "11:00-11:30",
		Mode:      entity.AppointmentModeOnline,
		Status:    entity.AppointmentStatusCompleted,
		PatientID: bobPatient.ID,
		DoctorID:  doctor.ID,
	}
	if err := db.Create(bobAppointment).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}
	bobPrescription := &entity.Prescription{Date: bobAppointment.Date, AppointmentID: bobAppointment.ID}
	if err := db.Create(bobPrescription).Error; err != nil {
		t.Fatalf("failed to create prescription: %v", err)
	}

	if _, err := uc.Create(ctxWithUser(alice.ID), &dto.CreateOrderRequest{PrescriptionID: alicePrescription.ID}); err != nil {
		t.Fatalf("alice order failed: %v", err)
	}
	if _, err := uc.Create(ctxWithUser(bob.ID), &dto.CreateOrderRequest{PrescriptionID: bobPrescription.ID}); err != nil {
		t.Fatalf("bob order failed: %v", err)
	}

	list, err := uc.GetMyOrders(ctxWithUser(alice.ID))
	if err != nil {
		t.Fatalf("GetMyOrders failed: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("total = %d, want 1", list.Total)
	}
	if len(list.Orders) == 1 && list.Orders[0].PatientID != alicePatient.ID {
		t.Errorf("patient_id = %d, want %d", list.Orders[0].PatientID, alicePatient.ID)
	}
}
