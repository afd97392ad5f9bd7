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
	ErrSlotTaken           = errors.New("time slot is already booked for that doctor")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.CreateAppointmentRequest) error
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status entity.AppointmentStatus) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	resolver        *service.PatientResolver
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	resolver *service.PatientResolver,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		auditService:    auditService,
	}
}

// Book creates an appointment for the calling identity.
//
// Flow, inside one transaction:
// 1. Resolve the caller's patient record, lazily creating a placeholder
//    so the new row rolls back together with a failed insert.
// 2. Insert the appointment with status Scheduled.
// Slot uniqueness is enforced only by the (doctor, date, time_slot)
// constraint; no pre-check, so concurrent bookings race safely and the
// loser gets a conflict.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.CreateAppointmentRequest) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ErrInvalidDateFormat
	}

	mode := req.Mode
	if mode == "" {
		mode = entity.AppointmentModeOnline
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	patientID, err := u.resolver.ResolveOrCreate(tx, userID)
	if err != nil {
		return err
	}

	appointment := &entity.Appointment{
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Mode:      mode,
		Status:    entity.AppointmentStatusScheduled,
		PatientID: patientID,
		DoctorID:  req.DoctorID,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_appointments_slot") {
			return ErrSlotTaken
		}
		if isForeignKeyError(err) {
			return ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return err
	}

	u.auditService.Log(tx, &userID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID,
		"doctor_id":      req.DoctorID,
		"date":           req.Date,
		"time_slot":      req.TimeSlot,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment booked: id=%d, patient=%d, doctor=%d, slot=%s %s",
		appointment.ID, patientID, req.DoctorID, req.Date, req.TimeSlot)
	return nil
}

// GetMyAppointments returns all appointments for the logged-in patient
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)
	patientID, err := u.resolver.Resolve(db, userID)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID int64, status entity.AppointmentStatus) error {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d status: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Log(tx, &userID, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_id": appointmentID,
		"status":         string(status),
	})

	return tx.Commit().Error
}
