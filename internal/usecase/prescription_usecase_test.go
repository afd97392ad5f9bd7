package usecase

import (
	"errors"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	repoimpl "clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newPrescriptionUsecase(db *gorm.DB) PrescriptionUsecase {
	log := newTestLogger()
	resolver := service.NewPatientResolver(log, repoimpl.NewPatientRepository())
	auditService := service.NewAuditService(log, repoimpl.NewAuditLogRepository())
	return NewPrescriptionUsecase(
		db,
		log,
		repoimpl.NewPrescriptionRepository(),
		repoimpl.NewAppointmentRepository(),
		repoimpl.NewMedicineRepository(),
		resolver,
		auditService,
	)
}

func createTestMedicine(t *testing.T, db *gorm.DB, name, price string) *entity.Medicine {
	t.Helper()
	medicine := &entity.Medicine{
		Name:  name,
		Type:  "Tablet",
		Price: decimal.RequireFromString(price),
	}
	if err := db.Create(medicine).Error; err != nil {
		t.Fatalf("failed to create test medicine: %v", err)
	}
	return medicine
}

func TestCreatePrescription(t *testing.T) {
	db := newTestDB(t)
	uc := newPrescriptionUsecase(db)

	admin := createTestUser(t, db, "admin")
	user := createTestUser(t, db, "alice")
	patient := createTestPatient(t, db, user.ID, "Alice Young")
	doctor := createTestDoctor(t, db, "Dr. House")
	prescription := createTestPrescription(t, db, patient.ID, doctor.ID)

	t.Run("DuplicateAppointment", func(t *testing.T) {
		err := uc.Create(ctxWithUser(admin.ID), &dto.CreatePrescriptionRequest{
			AppointmentID: prescription.AppointmentID,
		})
		if !errors.Is(err, ErrPrescriptionExists) {
			t.Fatalf("error = %v, want ErrPrescriptionExists", err)
		}
	})

	t.Run("UnknownAppointment", func(t *testing.T) {
		err := uc.Create(ctxWithUser(admin.ID), &dto.CreatePrescriptionRequest{
			AppointmentID: 9999,
		})
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("error = %v, want ErrAppointmentNotFound", err)
		}
	})
}

func TestAddMedicine(t *testing.T) {
	db := newTestDB(t)
	uc := newPrescriptionUsecase(db)

	admin := createTestUser(t, db, "admin")
	user := createTestUser(t, db, "alice")
	patient := createTestPatient(t, db, user.ID, "Alice Young")
	doctor := createTestDoctor(t, db, "Dr. House")
	prescription := createTestPrescription(t, db, patient.ID, doctor.ID)
	medicine := createTestMedicine(t, db, "Paracetamol", "2.50")

	err := uc.AddMedicine(ctxWithUser(admin.ID), prescription.ID, &dto.AddMedicineRequest{
		MedicineID: medicine.ID,
		Dosage:     "500mg",
		Frequency:  "3 times a day",
		Duration:   "5 days",
	})
	if err != nil {
		t.Fatalf("AddMedicine failed: %v", err)
	}

	t.Run("UnknownPrescription", func(t *testing.T) {
		err := uc.AddMedicine(ctxWithUser(admin.ID), 9999, &dto.AddMedicineRequest{
			MedicineID: medicine.ID,
		})
		if !errors.Is(err, ErrPrescriptionNotFound) {
			t.Fatalf("error = %v, want ErrPrescriptionNotFound", err)
		}
	})

	t.Run("UnknownMedicine", func(t *testing.T) {
		err := uc.AddMedicine(ctxWithUser(admin.ID), prescription.ID, &dto.AddMedicineRequest{
			MedicineID: 9999,
		})
		if !errors.Is(err, ErrMedicineNotFound) {
			t.Fatalf("error = %v, want ErrMedicineNotFound", err)
		}
	})
}

func TestGetCostBreakdown(t *testing.T) {
	db := newTestDB(t)
	uc := newPrescriptionUsecase(db)

	admin := createTestUser(t, db, "admin")
	user := createTestUser(t, db, "alice")
	patient := createTestPatient(t, db, user.ID, "Alice Young")
	doctor := createTestDoctor(t, db, "Dr. House")
	prescription := createTestPrescription(t, db, patient.ID, doctor.ID)

	paracetamol := createTestMedicine(t, db, "Paracetamol", "2.50")
	amoxicillin := createTestMedicine(t, db, "Amoxicillin", "8.00")

	lines := []dto.AddMedicineRequest{
		{MedicineID: paracetamol.ID, Frequency: "3 times a day", Duration: "5 days"},
		{MedicineID: amoxicillin.ID, Frequency: "twice daily", Duration: "7 days"},
	}
	for _, line := range lines {
		if err := uc.AddMedicine(ctxWithUser(admin.ID), prescription.ID, &line); err != nil {
			t.Fatalf("AddMedicine failed: %v", err)
		}
	}

	// 2.50*3*5 + 8.00*1*7 = 93.50 (free-text "twice" has no digit, so 1)
	cost, err := uc.GetCostBreakdown(ctxWithUser(admin.ID), prescription.ID)
	if err != nil {
		t.Fatalf("GetCostBreakdown failed: %v", err)
	}
	if len(cost.Medicines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cost.Medicines))
	}
	if !cost.TotalCost.Equal(decimal.RequireFromString("93.50")) {
		t.Errorf("total = %s, want 93.50", cost.TotalCost)
	}

	t.Run("UnknownPrescription", func(t *testing.T) {
		_, err := uc.GetCostBreakdown(ctxWithUser(admin.ID), 9999)
		if !errors.Is(err, ErrPrescriptionNotFound) {
			t.Fatalf("error = %v, want ErrPrescriptionNotFound", err)
		}
	})
}

func TestGetMyCostBreakdownOwnership(t *testing.T) {
	db := newTestDB(t)
	uc := newPrescriptionUsecase(db)

	alice := createTestUser(t, db, "alice")
	alicePatient := createTestPatient(t, db, alice.ID, "Alice Young")
	doctor := createTestDoctor(t, db, "Dr. Grey")
	prescription := createTestPrescription(t, db, alicePatient.ID, doctor.ID)

	bob := createTestUser(t, db, "bob")
	createTestPatient(t, db, bob.ID, "Bob Stone")

	if _, err := uc.GetMyCostBreakdown(ctxWithUser(alice.ID), prescription.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, err := uc.GetMyCostBreakdown(ctxWithUser(bob.ID), prescription.ID)
	if !errors.Is(err, ErrPrescriptionNotOwned) {
		t.Fatalf("error = %v, want ErrPrescriptionNotOwned", err)
	}
}
