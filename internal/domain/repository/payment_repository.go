package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	FindByOrderID(db *gorm.DB, orderID int64) (*entity.Payment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Payment, error)
	FindAll(db *gorm.DB) ([]entity.Payment, error)
	UpdateStatus(db *gorm.DB, id int64, status entity.PaymentStatus) (int64, error)
}
