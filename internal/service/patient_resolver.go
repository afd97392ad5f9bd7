package service

import (
	"errors"
	"fmt"
	"time"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrPatientNotFound is returned by Resolve when no patient record is
// linked to the user.
var ErrPatientNotFound = errors.New("patient record not found")

// PatientResolver maps an authenticated user to its patient record.
// ResolveOrCreate lazily creates a placeholder patient on first use and
// must run inside the caller's transaction so the new row rolls back
// together with the operation that triggered it.
type PatientResolver struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientResolver(log *logrus.Logger, patientRepo repository.PatientRepository) *PatientResolver {
	return &PatientResolver{
		log:         log,
		patientRepo: patientRepo,
	}
}

// Resolve returns the patient ID for the user, or ErrPatientNotFound.
// It never creates a record.
func (s *PatientResolver) Resolve(db *gorm.DB, userID int64) (int64, error) {
	patient, err := s.patientRepo.FindByUserID(db, userID)
	if err != nil {
		s.log.Warnf("Failed to find patient for user %d: %+v", userID, err)
		return 0, err
	}
	if patient == nil {
		return 0, ErrPatientNotFound
	}
	return patient.ID, nil
}

// ResolveOrCreate returns the patient ID for the user, inserting a
// placeholder record if none exists. Concurrent first-use for the same
// user is resolved by the unique index on patients.user_id; the loser's
// insert fails and the surrounding transaction rolls back.
func (s *PatientResolver) ResolveOrCreate(tx *gorm.DB, userID int64) (int64, error) {
	patient, err := s.patientRepo.FindByUserID(tx, userID)
	if err != nil {
		s.log.Warnf("Failed to find patient for user %d: %+v", userID, err)
		return 0, err
	}
	if patient != nil {
		return patient.ID, nil
	}

	placeholder := &entity.Patient{
		Name:        fmt.Sprintf("user_%d", userID),
		DateOfBirth: time.Now().UTC().Truncate(24 * time.Hour),
		Gender:      entity.GenderOther,
		Contact:     "0000000000",
		Email:       fmt.Sprintf("user%d@example.com", userID),
		UserID:      &userID,
	}

	if err := s.patientRepo.Create(tx, placeholder); err != nil {
		s.log.Warnf("Failed to create placeholder patient for user %d: %+v", userID, err)
		return 0, err
	}

	return placeholder.ID, nil
}
