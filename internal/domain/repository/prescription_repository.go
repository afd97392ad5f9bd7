package repository

import (
	"clinic-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id int64) (*entity.Prescription, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int64) (*entity.Prescription, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Prescription, error)
	FindAll(db *gorm.DB) ([]entity.Prescription, error)
	AddMedicine(db *gorm.DB, line *entity.PrescriptionMedicine) error
	FindMedicines(db *gorm.DB, prescriptionID int64) ([]entity.PrescriptionMedicine, error)
	// BelongsToPatient reports whether the prescription's parent
	// appointment is owned by the given patient.
	BelongsToPatient(db *gorm.DB, prescriptionID, patientID int64) (bool, error)
	// CostViaFunction evaluates the database-side
	// calculate_prescription_cost function for the prescription.
	CostViaFunction(db *gorm.DB, prescriptionID int64) (decimal.Decimal, error)
}
