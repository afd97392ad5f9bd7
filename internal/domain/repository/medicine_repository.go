package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindByID(db *gorm.DB, id int64) (*entity.Medicine, error)
	FindAll(db *gorm.DB) ([]entity.Medicine, error)
	Delete(db *gorm.DB, id int64) error
}
