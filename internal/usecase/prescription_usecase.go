package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPrescriptionExists   = errors.New("prescription already exists for this appointment")
	ErrMedicineNotFound     = errors.New("medicine not found")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) error
	AddMedicine(ctx context.Context, prescriptionID int64, req *dto.AddMedicineRequest) error
	GetMyPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetAllPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetCostBreakdown(ctx context.Context, prescriptionID int64) (*dto.PrescriptionCostResponse, error)
	GetMyCostBreakdown(ctx context.Context, prescriptionID int64) (*dto.PrescriptionCostResponse, error)
	GetCostViaFunction(ctx context.Context, prescriptionID int64) (*dto.CostResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	medicineRepo     repository.MedicineRepository
	resolver         *service.PatientResolver
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	medicineRepo repository.MedicineRepository,
	resolver *service.PatientResolver,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		medicineRepo:     medicineRepo,
		resolver:         resolver,
		auditService:     auditService,
	}
}

// Create opens a dated prescription for an appointment. At most one
// prescription can exist per appointment; the unique constraint on
// appointment_id backs the pre-check against concurrent creates.
func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) error {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	prescription := &entity.Prescription{
		Date:          time.Now().UTC().Truncate(24 * time.Hour),
		AppointmentID: req.AppointmentID,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		if isDuplicateKeyError(err, "idx_prescriptions_appointment") {
			return ErrPrescriptionExists
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return err
	}

	u.auditService.Log(tx, &userID, entity.AuditActionPrescriptionCreate, entity.JSON{
		"prescription_id": prescription.ID,
		"appointment_id":  req.AppointmentID,
	})

	return tx.Commit().Error
}

func (u *prescriptionUsecase) AddMedicine(ctx context.Context, prescriptionID int64, req *dto.AddMedicineRequest) error {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(tx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	medicine, err := u.medicineRepo.FindByID(tx, req.MedicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	line := &entity.PrescriptionMedicine{
		PrescriptionID: prescriptionID,
		MedicineID:     req.MedicineID,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Duration:       req.Duration,
		Instructions:   req.Instructions,
	}

	if err := u.prescriptionRepo.AddMedicine(tx, line); err != nil {
		u.log.Warnf("Failed to add medicine to prescription %d: %+v", prescriptionID, err)
		return err
	}

	u.auditService.Log(tx, &userID, entity.AuditActionPrescriptionAddMed, entity.JSON{
		"prescription_id": prescriptionID,
		"medicine_id":     req.MedicineID,
	})

	return tx.Commit().Error
}

func (u *prescriptionUsecase) GetMyPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)
	patientID, err := u.resolver.Resolve(db, userID)
	if err != nil {
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find prescriptions for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) GetAllPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

// GetCostBreakdown computes line totals and the grand total from the
// prescription's medicine lines. Read-time derivation only; nothing is
// persisted.
func (u *prescriptionUsecase) GetCostBreakdown(ctx context.Context, prescriptionID int64) (*dto.PrescriptionCostResponse, error) {
	db := u.db.WithContext(ctx)

	prescription, err := u.prescriptionRepo.FindByID(db, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	lines, err := u.prescriptionRepo.FindMedicines(db, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find medicines for prescription %d: %+v", prescriptionID, err)
		return nil, err
	}

	return converter.CostToResponse(service.DeriveCost(lines)), nil
}

// GetMyCostBreakdown is the patient-facing variant; it verifies the
// prescription belongs to the caller before computing anything.
func (u *prescriptionUsecase) GetMyCostBreakdown(ctx context.Context, prescriptionID int64) (*dto.PrescriptionCostResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)
	patientID, err := u.resolver.Resolve(db, userID)
	if err != nil {
		return nil, err
	}

	owned, err := u.prescriptionRepo.BelongsToPatient(db, prescriptionID, patientID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrPrescriptionNotOwned
	}

	return u.GetCostBreakdown(ctx, prescriptionID)
}

// GetCostViaFunction returns the total computed by the database-side
// calculate_prescription_cost function. Must agree with GetCostBreakdown
// for the same data.
func (u *prescriptionUsecase) GetCostViaFunction(ctx context.Context, prescriptionID int64) (*dto.CostResponse, error) {
	cost, err := u.prescriptionRepo.CostViaFunction(u.db.WithContext(ctx), prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to calculate cost for prescription %d: %+v", prescriptionID, err)
		return nil, err
	}

	return &dto.CostResponse{TotalCost: cost}, nil
}
