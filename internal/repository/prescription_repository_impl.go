package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id int64) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Where("prescription_id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Where("appointment_id = ?", appointmentID).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.
		Joins("JOIN appointments ON appointments.appointment_id = prescriptions.appointment_id").
		Where("appointments.patient_id = ?", patientID).
		Order("prescriptions.prescription_id DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindAll(db *gorm.DB) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Appointment.Patient").Preload("Appointment.Doctor").
		Order("prescription_id DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) AddMedicine(db *gorm.DB, line *entity.PrescriptionMedicine) error {
	return db.Create(line).Error
}

func (r *prescriptionRepository) FindMedicines(db *gorm.DB, prescriptionID int64) ([]entity.PrescriptionMedicine, error) {
	var lines []entity.PrescriptionMedicine
	err := db.Preload("Medicine").
		Where("prescription_id = ?", prescriptionID).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *prescriptionRepository) BelongsToPatient(db *gorm.DB, prescriptionID, patientID int64) (bool, error) {
	var count int64
	err := db.Model(&entity.Prescription{}).
		Joins("JOIN appointments ON appointments.appointment_id = prescriptions.appointment_id").
		Where("prescriptions.prescription_id = ? AND appointments.patient_id = ?", prescriptionID, patientID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CostViaFunction evaluates the calculate_prescription_cost SQL function
// installed by the migrations. It must agree with the in-process cost
// derivation for identical data.
func (r *prescriptionRepository) CostViaFunction(db *gorm.DB, prescriptionID int64) (decimal.Decimal, error) {
	var cost decimal.NullDecimal
	err := db.Raw("SELECT calculate_prescription_cost(?) AS total_cost", prescriptionID).Scan(&cost).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !cost.Valid {
		return decimal.Zero, nil
	}
	return cost.Decimal, nil
}
