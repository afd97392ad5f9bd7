package repository

import (
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type insightsRepository struct{}

func NewInsightsRepository() domainRepo.InsightsRepository {
	return &insightsRepository{}
}

func (r *insightsRepository) PatientAges(db *gorm.DB) ([]domainRepo.PatientAgeRow, error) {
	var rows []domainRepo.PatientAgeRow
	err := db.Raw(`
		SELECT
			p.patient_id,
			p.name,
			p.date_of_birth,
			calculate_age(p.date_of_birth) AS age,
			get_patient_age_category(p.date_of_birth) AS category
		FROM patients p
		ORDER BY p.created_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *insightsRepository) PrescriptionCosts(db *gorm.DB) ([]domainRepo.PrescriptionCostRow, error) {
	var rows []domainRepo.PrescriptionCostRow
	err := db.Raw(`
		SELECT
			pr.prescription_id,
			pr.appointment_id,
			pr.date,
			calculate_prescription_cost(pr.prescription_id) AS estimated_cost
		FROM prescriptions pr
		ORDER BY pr.created_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *insightsRepository) Summary(db *gorm.DB) (*domainRepo.ActivitySummary, error) {
	var summary domainRepo.ActivitySummary
	err := db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM appointments WHERE status = 'Completed') AS completed_appointments,
			(SELECT COUNT(*) FROM prescriptions) AS total_prescriptions,
			(SELECT COUNT(*) FROM pharmacy_orders) AS pharmacy_orders,
			(SELECT COUNT(*) FROM payments WHERE status = 'Pending') AS pending_payments,
			(SELECT COUNT(*) FROM doctors WHERE ratings IS NOT NULL) AS rated_doctors
	`).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
