package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with constraint errors
// translated to gorm sentinel errors, matching how the duplicate-key
// and foreign-key classification behaves against postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	// A single connection keeps every session on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Appointment{},
		&entity.Medicine{},
		&entity.Prescription{},
		&entity.PrescriptionMedicine{},
		&entity.PharmacyOrder{},
		&entity.Payment{},
		&entity.LabTest{},
		&entity.AppointmentTest{},
		&entity.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// ctxWithUser simulates an authenticated request context.
func ctxWithUser(userID int64) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

func ctxWithUserRole(userID int64, role string) context.Context {
	ctx := ctxWithUser(userID)
	return context.WithValue(ctx, middleware.RoleKey, role)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username: username,
		Password: "hashed",
		Role:     entity.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestDoctor(t *testing.T, db *gorm.DB, name string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{
		Name:      name,
		Specialty: "General Medicine",
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to create test doctor: %v", err)
	}
	return doctor
}

func createTestPatient(t *testing.T, db *gorm.DB, userID int64, name string) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{
		Name:        name,
		DateOfBirth: time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		Gender:      entity.GenderFemale,
		UserID:      &userID,
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("failed to create test patient: %v", err)
	}
	return patient
}
