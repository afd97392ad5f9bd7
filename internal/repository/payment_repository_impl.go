package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) FindByOrderID(db *gorm.DB, orderID int64) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("order_id = ?", orderID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("Order").
		Joins("JOIN pharmacy_orders ON pharmacy_orders.order_id = payments.order_id").
		Where("pharmacy_orders.patient_id = ?", patientID).
		Order("payments.payment_id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindAll(db *gorm.DB) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Preload("Order").
		Order("payment_id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) UpdateStatus(db *gorm.DB, id int64, status entity.PaymentStatus) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("payment_id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
