package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PatientAgeRow is a patient joined with the database-side age functions.
type PatientAgeRow struct {
	PatientID   int64     `json:"patient_id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Age         int       `json:"age"`
	Category    string    `json:"category"`
}

// PrescriptionCostRow is a prescription joined with the database-side
// cost function.
type PrescriptionCostRow struct {
	PrescriptionID int64           `json:"prescription_id"`
	AppointmentID  int64           `json:"appointment_id"`
	Date           time.Time       `json:"date"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
}

// ActivitySummary aggregates recent database activity maintained by
// triggers and status updates.
type ActivitySummary struct {
	CompletedAppointments int64 `json:"completed_appointments"`
	TotalPrescriptions    int64 `json:"total_prescriptions"`
	PharmacyOrders        int64 `json:"pharmacy_orders"`
	PendingPayments       int64 `json:"pending_payments"`
	RatedDoctors          int64 `json:"rated_doctors"`
}

// InsightsRepository exposes reads over the server-side SQL functions
// (calculate_age, get_patient_age_category, calculate_prescription_cost).
type InsightsRepository interface {
	PatientAges(db *gorm.DB) ([]PatientAgeRow, error)
	PrescriptionCosts(db *gorm.DB) ([]PrescriptionCostRow, error)
	Summary(db *gorm.DB) (*ActivitySummary, error)
}
