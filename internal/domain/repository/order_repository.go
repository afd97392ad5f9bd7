package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(db *gorm.DB, order *entity.PharmacyOrder) error
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.PharmacyOrder, error)
	FindAll(db *gorm.DB) ([]entity.PharmacyOrder, error)
}
