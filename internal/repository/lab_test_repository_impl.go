package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type labTestRepository struct{}

func NewLabTestRepository() domainRepo.LabTestRepository {
	return &labTestRepository{}
}

func (r *labTestRepository) Create(db *gorm.DB, test *entity.LabTest) error {
	return db.Create(test).Error
}

func (r *labTestRepository) FindAll(db *gorm.DB) ([]entity.LabTest, error) {
	var tests []entity.LabTest
	err := db.Order("test_id DESC").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *labTestRepository) RequestTest(db *gorm.DB, at *entity.AppointmentTest) error {
	return db.Create(at).Error
}

func (r *labTestRepository) AttachReport(db *gorm.DB, appointmentID, testID int64, reportURL string, reportFile []byte) (int64, error) {
	result := db.Model(&entity.AppointmentTest{}).
		Where("appointment_id = ? AND test_id = ?", appointmentID, testID).
		Updates(map[string]interface{}{
			"report_url":  reportURL,
			"report_file": reportFile,
			"status":      entity.TestStatusCompleted,
		})
	return result.RowsAffected, result.Error
}

func (r *labTestRepository) FindReport(db *gorm.DB, appointmentID, testID int64) (*entity.AppointmentTest, error) {
	var at entity.AppointmentTest
	err := db.Where("appointment_id = ? AND test_id = ?", appointmentID, testID).First(&at).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &at, nil
}

func (r *labTestRepository) FindTestsByPatientID(db *gorm.DB, patientID int64) ([]entity.AppointmentTest, error) {
	var tests []entity.AppointmentTest
	err := db.Preload("Test").Preload("Appointment").
		Joins("JOIN appointments ON appointments.appointment_id = appointment_tests.appointment_id").
		Where("appointments.patient_id = ?", patientID).
		Order("appointment_tests.appointment_id DESC").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *labTestRepository) FindAllAppointmentTests(db *gorm.DB) ([]entity.AppointmentTest, error) {
	var tests []entity.AppointmentTest
	err := db.Preload("Test").Preload("Appointment").
		Order("appointment_id DESC").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}
