package usecase

import (
	"errors"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	repoimpl "clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	log := newTestLogger()
	patientRepo := repoimpl.NewPatientRepository()
	resolver := service.NewPatientResolver(log, patientRepo)
	auditService := service.NewAuditService(log, repoimpl.NewAuditLogRepository())
	return NewAppointmentUsecase(db, log, repoimpl.NewAppointmentRepository(), resolver, auditService)
}

func TestBookCreatesPlaceholderPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	user := createTestUser(t, db, "alice")
	doctor := createTestDoctor(t, db, "Dr. House")

	err := uc.Book(ctxWithUser(user.ID), &dto.CreateAppointmentRequest{
		Date:     "2026-09-01",
		TimeSlot: "10:00-10:30",
		DoctorID: doctor.ID,
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	var patient entity.Patient
	if err := db.Where("user_id = ?", user.ID).First(&patient).Error; err != nil {
		t.Fatalf("expected placeholder patient to exist: %v", err)
	}
	if patient.Name != "user_1" {
		t.Errorf("placeholder name = %q, want user_1", patient.Name)
	}
	if patient.Gender != entity.GenderOther {
		t.Errorf("placeholder gender = %q, want Other", patient.Gender)
	}

	var appointment entity.Appointment
	if err := db.Where("patient_id = ?", patient.ID).First(&appointment).Error; err != nil {
		t.Fatalf("expected appointment to exist: %v", err)
	}
	if appointment.Status != entity.AppointmentStatusScheduled {
		t.Errorf("status = %q, want Scheduled", appointment.Status)
	}
	if appointment.Mode != entity.AppointmentModeOnline {
		t.Errorf("mode = %q, want default Online", appointment.Mode)
	}
}

func TestBookReusesExistingPatient(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	user := createTestUser(t, db, "bob")
	patient := createTestPatient(t, db, user.ID, "Bob Stone")
	doctor := createTestDoctor(t, db, "Dr. Grey")

	for _, slot := range []string{"09:00-09:30", "11:00-11:30"} {
		err := uc.Book(ctxWithUser(user.ID), &dto.CreateAppointmentRequest{
			Date:     "2026-09-02",
			TimeSlot: slot,
			DoctorID: doctor.ID,
		})
		if err != nil {
			t.Fatalf("Book(%s) failed: %v", slot, err)
		}
	}

	var count int64
	db.Model(&entity.Patient{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("patient count = %d, want 1", count)
	}

	db.Model(&entity.Appointment{}).Where("patient_id = ?", patient.ID).Count(&count)
	if count != 2 {
		t.Errorf("appointment count = %d, want 2", count)
	}
}

func TestBookSlotConflict(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	doctor := createTestDoctor(t, db, "Dr. Wilson")

	req := &dto.CreateAppointmentRequest{
		Date:     "2026-09-03",
		TimeSlot: "14:00-14:30",
		DoctorID: doctor.ID,
	}

	if err := uc.Book(ctxWithUser(alice.ID), req); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	err := uc.Book(ctxWithUser(bob.ID), req)
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("second booking error = %v, want ErrSlotTaken", err)
	}

	// The loser's lazily created patient must roll back with the insert.
	var count int64
	db.Model(&entity.Patient{}).Where("user_id = ?", bob.ID).Count(&count)
	if count != 0 {
		t.Errorf("conflicting booking left %d patient rows behind", count)
	}

	// A different slot with the same doctor still works.
	err = uc.Book(ctxWithUser(bob.ID), &dto.CreateAppointmentRequest{
		Date:     "2026-09-03",
		TimeSlot: "15:00-15:30",
		DoctorID: doctor.ID,
	})
	if err != nil {
		t.Fatalf("booking a free slot failed: %v", err)
	}
}

func TestBookWritesAuditTrail(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	user := createTestUser(t, db, "frank")
	doctor := createTestDoctor(t, db, "Dr. Foreman")

	if err := uc.Book(ctxWithUser(user.ID), &dto.CreateAppointmentRequest{
		Date:     "2026-09-07",
		TimeSlot: "10:00-10:30",
		DoctorID: doctor.ID,
	}); err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	var log entity.AuditLog
	if err := db.Where("action = ?", entity.AuditActionAppointmentBook).First(&log).Error; err != nil {
		t.Fatalf("expected audit entry for booking: %v", err)
	}
	if log.UserID == nil || *log.UserID != user.ID {
		t.Errorf("audit user_id = %v, want %d", log.UserID, user.ID)
	}
}

func TestBookUnknownDoctor(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	user := createTestUser(t, db, "carol")

	err := uc.Book(ctxWithUser(user.ID), &dto.CreateAppointmentRequest{
		Date:     "2026-09-04",
		TimeSlot: "10:00-10:30",
		DoctorID: 999,
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("error = %v, want ErrDoctorNotFound", err)
	}
}

func TestBookInvalidDate(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	user := createTestUser(t, db, "dave")

	err := uc.Book(ctxWithUser(user.ID), &dto.CreateAppointmentRequest{
		Date:     "01-09-2026",
		TimeSlot: "10:00-10:30",
		DoctorID: 1,
	})
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	admin := createTestUser(t, db, "admin")
	user := createTestUser(t, db, "eve")
	doctor := createTestDoctor(t, db, "Dr. Cuddy")

	if err := uc.Book(ctxWithUser(user.ID), &dto.CreateAppointmentRequest{
		Date:     "2026-09-05",
		TimeSlot: "10:00-10:30",
		DoctorID: doctor.ID,
	}); err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	var appointment entity.Appointment
	if err := db.First(&appointment).Error; err != nil {
		t.Fatalf("failed to load appointment: %v", err)
	}

	err := uc.UpdateStatus(ctxWithUser(admin.ID), appointment.ID, entity.AppointmentStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	db.First(&appointment, appointment.ID)
	if appointment.Status != entity.AppointmentStatusCompleted {
		t.Errorf("status = %q, want Completed", appointment.Status)
	}

	err = uc.UpdateStatus(ctxWithUser(admin.ID), 9999, entity.AppointmentStatusCancelled)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("error = %v, want ErrAppointmentNotFound", err)
	}
}

func TestGetMyAppointmentsScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	uc := newAppointmentUsecase(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	doctor := createTestDoctor(t, db, "Dr. Chase")

	for i, user := range []*entity.User{alice, bob} {
		slot := []string{"09:00-09:30", "10:00-10:30"}[i]
		if err := uc.Book(ctxWithUser(user.ID), &dto.CreateAppointmentRequest{
			Date:     "2026-09-06",
			TimeSlot: slot,
			DoctorID: doctor.ID,
		}); err != nil {
			t.Fatalf("Book for %s failed: %v", user.Username, err)
		}
	}

	list, err := uc.GetMyAppointments(ctxWithUser(alice.ID))
	if err != nil {
		t.Fatalf("GetMyAppointments failed: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("total = %d, want 1", list.Total)
	}
	if len(list.Appointments) == 1 && list.Appointments[0].TimeSlot != "09:00-09:30" {
		t.Errorf("time slot = %q, want 09:00-09:30", list.Appointments[0].TimeSlot)
	}
}
