package usecase

import (
	"context"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.CreateMedicineResponse, error)
	GetAll(ctx context.Context) ([]entity.Medicine, error)
	Delete(ctx context.Context, id int64) error
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
}

func NewMedicineUsecase(db *gorm.DB, log *logrus.Logger, medicineRepo repository.MedicineRepository) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.CreateMedicineResponse, error) {
	medicine := &entity.Medicine{
		Name:         req.Name,
		Type:         req.Type,
		Manufacturer: req.Manufacturer,
		Price:        req.Price,
	}

	if err := u.medicineRepo.Create(u.db.WithContext(ctx), medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	return &dto.CreateMedicineResponse{MedicineID: medicine.ID}, nil
}

func (u *medicineUsecase) GetAll(ctx context.Context) ([]entity.Medicine, error) {
	medicines, err := u.medicineRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, err
	}
	return medicines, nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id int64) error {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	if err := u.medicineRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete medicine %d: %+v", id, err)
		return err
	}
	return nil
}
