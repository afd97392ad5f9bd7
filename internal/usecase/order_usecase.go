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

var ErrPrescriptionNotOwned = errors.New("prescription does not belong to you")

type OrderUsecase interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	GetMyOrders(ctx context.Context) (*dto.OrderListResponse, error)
	GetAllOrders(ctx context.Context) (*dto.OrderListResponse, error)
}

type orderUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	orderRepo        repository.OrderRepository
	prescriptionRepo repository.PrescriptionRepository
	paymentRepo      repository.PaymentRepository
	resolver         *service.PatientResolver
	auditService     service.AuditService
}

func NewOrderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	orderRepo repository.OrderRepository,
	prescriptionRepo repository.PrescriptionRepository,
	paymentRepo repository.PaymentRepository,
	resolver *service.PatientResolver,
	auditService service.AuditService,
) OrderUsecase {
	return &orderUsecase{
		db:               db,
		log:              log,
		orderRepo:        orderRepo,
		prescriptionRepo: prescriptionRepo,
		paymentRepo:      paymentRepo,
		resolver:         resolver,
		auditService:     auditService,
	}
}

// Create creates a pharmacy order from a prescription, restricted to the
// prescription's owning patient. Patient resolution is read-only here: a
// patient must already exist to own a prescription, so nothing is lazily
// created. The payment row is synthesized by a database trigger on order
// insert; its presence is verified inside the same transaction but a
// missing payment only logs a warning.
func (u *orderUsecase) Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	patientID, err := u.resolver.Resolve(tx, userID)
	if err != nil {
		return nil, err
	}

	owned, err := u.prescriptionRepo.BelongsToPatient(tx, req.PrescriptionID, patientID)
	if err != nil {
		u.log.Warnf("Failed ownership check for prescription %d: %+v", req.PrescriptionID, err)
		return nil, err
	}
	if !owned {
		return nil, ErrPrescriptionNotOwned
	}

	order := &entity.PharmacyOrder{
		Date:           time.Now().UTC().Truncate(24 * time.Hour),
		Status:         entity.OrderStatusPending,
		PatientID:      patientID,
		PrescriptionID: req.PrescriptionID,
	}

	if err := u.orderRepo.Create(tx, order); err != nil {
		u.log.Warnf("Failed to create pharmacy order: %+v", err)
		return nil, err
	}

	payment, err := u.paymentRepo.FindByOrderID(tx, order.ID)
	if err != nil {
		u.log.Warnf("Failed to check payment for order %d: %+v", order.ID, err)
		return nil, err
	}
	if payment == nil {
		u.log.Warnf("No payment found for order %d, check trigger configuration", order.ID)
	}

	u.auditService.Log(tx, &userID, entity.AuditActionOrderCreate, entity.JSON{
		"order_id":        order.ID,
		"prescription_id": req.PrescriptionID,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Pharmacy order created: id=%d, patient=%d, prescription=%d",
		order.ID, patientID, req.PrescriptionID)
	return &dto.CreateOrderResponse{OrderID: order.ID}, nil
}

// GetMyOrders returns the logged-in patient's orders with payment info
func (u *orderUsecase) GetMyOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)
	patientID, err := u.resolver.Resolve(db, userID)
	if err != nil {
		return nil, err
	}

	orders, err := u.orderRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find orders for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.OrderListResponse{
		Orders: converter.OrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

func (u *orderUsecase) GetAllOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find orders: %+v", err)
		return nil, err
	}

	return &dto.OrderListResponse{
		Orders: converter.OrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}
