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

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentUsecase interface {
	GetMyPayments(ctx context.Context) (*dto.PaymentListResponse, error)
	GetAllPayments(ctx context.Context) (*dto.PaymentListResponse, error)
	UpdateStatus(ctx context.Context, paymentID int64, status entity.PaymentStatus) error
}

type paymentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	paymentRepo  repository.PaymentRepository
	resolver     *service.PatientResolver
	auditService service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	resolver *service.PatientResolver,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:           db,
		log:          log,
		paymentRepo:  paymentRepo,
		resolver:     resolver,
		auditService: auditService,
	}
}

func (u *paymentUsecase) GetMyPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)
	patientID, err := u.resolver.Resolve(db, userID)
	if err != nil {
		return nil, err
	}

	payments, err := u.paymentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find payments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

func (u *paymentUsecase) GetAllPayments(ctx context.Context) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find payments: %+v", err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

func (u *paymentUsecase) UpdateStatus(ctx context.Context, paymentID int64, status entity.PaymentStatus) error {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	affected, err := u.paymentRepo.UpdateStatus(tx, paymentID, status)
	if err != nil {
		u.log.Warnf("Failed to update payment %d: %+v", paymentID, err)
		return err
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}

	u.auditService.Log(tx, &userID, entity.AuditActionPaymentUpdate, entity.JSON{
		"payment_id": paymentID,
		"status":     string(status),
	})

	return tx.Commit().Error
}
