package repository

import (
	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type orderRepository struct{}

func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(db *gorm.DB, order *entity.PharmacyOrder) error {
	return db.Create(order).Error
}

func (r *orderRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.PharmacyOrder, error) {
	var orders []entity.PharmacyOrder
	err := db.Preload("Payment").
		Where("patient_id = ?", patientID).
		Order("order_id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindAll(db *gorm.DB) ([]entity.PharmacyOrder, error) {
	var orders []entity.PharmacyOrder
	err := db.Preload("Payment").Preload("Prescription.Appointment").
		Order("order_id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
