package usecase

import (
	"context"
	"errors"

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
	ErrTestNotFound         = errors.New("lab test not found")
	ErrTestRequestNotFound  = errors.New("appointment test not found")
	ErrReportNotFound       = errors.New("no report found")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to you")
	ErrTestAlreadyRequested = errors.New("test already requested for this appointment")
)

type LabTestUsecase interface {
	CreateTest(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.CreateLabTestResponse, error)
	GetAllTests(ctx context.Context) ([]entity.LabTest, error)
	RequestTest(ctx context.Context, req *dto.RequestTestRequest) error
	UploadReport(ctx context.Context, appointmentID, testID int64, filename string, content []byte) (*dto.UploadReportResponse, error)
	GetMyTests(ctx context.Context) (*dto.AppointmentTestListResponse, error)
	GetAllAppointmentTests(ctx context.Context) (*dto.AppointmentTestListResponse, error)
	GetReport(ctx context.Context, appointmentID, testID int64) ([]byte, error)
}

type labTestUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	labTestRepo     repository.LabTestRepository
	appointmentRepo repository.AppointmentRepository
	resolver        *service.PatientResolver
	reportStorage   *service.ReportStorage
	auditService    service.AuditService
}

func NewLabTestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	labTestRepo repository.LabTestRepository,
	appointmentRepo repository.AppointmentRepository,
	resolver *service.PatientResolver,
	reportStorage *service.ReportStorage,
	auditService service.AuditService,
) LabTestUsecase {
	return &labTestUsecase{
		db:              db,
		log:             log,
		labTestRepo:     labTestRepo,
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		reportStorage:   reportStorage,
		auditService:    auditService,
	}
}

func (u *labTestUsecase) CreateTest(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.CreateLabTestResponse, error) {
	test := &entity.LabTest{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}

	if err := u.labTestRepo.Create(u.db.WithContext(ctx), test); err != nil {
		u.log.Warnf("Failed to create lab test: %+v", err)
		return nil, err
	}

	return &dto.CreateLabTestResponse{TestID: test.ID}, nil
}

func (u *labTestUsecase) GetAllTests(ctx context.Context) ([]entity.LabTest, error) {
	tests, err := u.labTestRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find lab tests: %+v", err)
		return nil, err
	}
	return tests, nil
}

// RequestTest schedules a lab test for one of the caller's appointments.
func (u *labTestUsecase) RequestTest(ctx context.Context, req *dto.RequestTestRequest) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)
	patientID, err := u.resolver.Resolve(db, userID)
	if err != nil {
		return err
	}

	appointment, err := u.appointmentRepo.FindByID(db, req.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return ErrAppointmentNotOwned
	}

	at := &entity.AppointmentTest{
		AppointmentID: req.AppointmentID,
		TestID:        req.TestID,
		Status:        entity.TestStatusScheduled,
	}

	if err := u.labTestRepo.RequestTest(db, at); err != nil {
		if isDuplicateKeyError(err, "") {
			return ErrTestAlreadyRequested
		}
		// The appointment was verified above, so a failing reference
		// points at the test id.
		if isForeignKeyError(err) {
			return ErrTestNotFound
		}
		u.log.Warnf("Failed to request test: %+v", err)
		return err
	}

	return nil
}

// UploadReport stores the report file, records its reference and blob on
// the appointment test and marks it completed.
func (u *labTestUsecase) UploadReport(ctx context.Context, appointmentID, testID int64, filename string, content []byte) (*dto.UploadReportResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	reportURL, err := u.reportStorage.Save(filename, content)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.discardReport(reportURL)
		return nil, tx.Error
	}
	defer tx.Rollback()

	affected, err := u.labTestRepo.AttachReport(tx, appointmentID, testID, reportURL, content)
	if err != nil {
		u.log.Warnf("Failed to attach report for appointment %d test %d: %+v", appointmentID, testID, err)
		u.discardReport(reportURL)
		return nil, err
	}
	if affected == 0 {
		u.discardReport(reportURL)
		return nil, ErrTestRequestNotFound
	}

	u.auditService.Log(tx, &userID, entity.AuditActionReportUpload, entity.JSON{
		"appointment_id": appointmentID,
		"test_id":        testID,
		"report_url":     reportURL,
	})

	if err := tx.Commit().Error; err != nil {
		u.discardReport(reportURL)
		return nil, err
	}

	return &dto.UploadReportResponse{ReportURL: reportURL}, nil
}

// discardReport removes a stored file whose database reference was never
// committed.
func (u *labTestUsecase) discardReport(reportURL string) {
	if err := u.reportStorage.Remove(reportURL); err != nil {
		u.log.Warnf("Failed to remove orphaned report %s: %+v", reportURL, err)
	}
}

func (u *labTestUsecase) GetMyTests(ctx context.Context) (*dto.AppointmentTestListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)
	patientID, err := u.resolver.Resolve(db, userID)
	if err != nil {
		return nil, err
	}

	tests, err := u.labTestRepo.FindTestsByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find tests for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentTestListResponse{
		Tests: converter.AppointmentTestsToResponses(tests),
		Total: len(tests),
	}, nil
}

func (u *labTestUsecase) GetAllAppointmentTests(ctx context.Context) (*dto.AppointmentTestListResponse, error) {
	tests, err := u.labTestRepo.FindAllAppointmentTests(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointment tests: %+v", err)
		return nil, err
	}

	return &dto.AppointmentTestListResponse{
		Tests: converter.AppointmentTestsToResponses(tests),
		Total: len(tests),
	}, nil
}

// GetReport serves the stored report blob. Non-admin callers may only
// fetch reports for their own appointments.
func (u *labTestUsecase) GetReport(ctx context.Context, appointmentID, testID int64) ([]byte, error) {
	db := u.db.WithContext(ctx)

	role, _ := middleware.GetRoleFromContext(ctx)
	if role != entity.RoleAdmin {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok {
			return nil, errors.New("user not found in context")
		}
		patientID, err := u.resolver.Resolve(db, userID)
		if err != nil {
			return nil, err
		}
		appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil || appointment.PatientID != patientID {
			return nil, ErrAppointmentNotOwned
		}
	}

	at, err := u.labTestRepo.FindReport(db, appointmentID, testID)
	if err != nil {
		u.log.Warnf("Failed to find report for appointment %d test %d: %+v", appointmentID, testID, err)
		return nil, err
	}
	if at == nil || len(at.ReportFile) == 0 {
		return nil, ErrReportNotFound
	}

	return at.ReportFile, nil
}
