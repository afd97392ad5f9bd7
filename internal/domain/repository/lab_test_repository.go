package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type LabTestRepository interface {
	Create(db *gorm.DB, test *entity.LabTest) error
	FindAll(db *gorm.DB) ([]entity.LabTest, error)

	RequestTest(db *gorm.DB, at *entity.AppointmentTest) error
	AttachReport(db *gorm.DB, appointmentID, testID int64, reportURL string, reportFile []byte) (int64, error)
	FindReport(db *gorm.DB, appointmentID, testID int64) (*entity.AppointmentTest, error)
	FindTestsByPatientID(db *gorm.DB, patientID int64) ([]entity.AppointmentTest, error)
	FindAllAppointmentTests(db *gorm.DB) ([]entity.AppointmentTest, error)
}
