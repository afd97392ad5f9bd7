package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	GetMyProfile(ctx context.Context) (*entity.Patient, error)
	GetAll(ctx context.Context) ([]entity.Patient, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	resolver    *service.PatientResolver
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	resolver *service.PatientResolver,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		resolver:    resolver,
	}
}

func (u *patientUsecase) GetMyProfile(ctx context.Context) (*entity.Patient, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %d: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, service.ErrPatientNotFound
	}
	return patient, nil
}

func (u *patientUsecase) GetAll(ctx context.Context) ([]entity.Patient, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return patients, nil
}
