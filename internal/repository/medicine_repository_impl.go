package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Create(medicine).Error
}

func (r *medicineRepository) FindByID(db *gorm.DB, id int64) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("medicine_id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindAll(db *gorm.DB) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := db.Order("medicine_id DESC").Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("medicine_id = ?", id).Delete(&entity.Medicine{}).Error
}
