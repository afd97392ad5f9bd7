package dto

import "github.com/shopspring/decimal"

type CreatePrescriptionRequest struct {
	AppointmentID int64 `json:"appointment_id" validate:"required,gt=0"`
}

type AddMedicineRequest struct {
	MedicineID   int64  `json:"medicine_id" validate:"required,gt=0"`
	Dosage       string `json:"dosage" validate:"omitempty,max=100"`
	Frequency    string `json:"frequency" validate:"omitempty,max=100"`
	Duration     string `json:"duration" validate:"omitempty,max=100"`
	Instructions string `json:"instructions"`
}

type PrescriptionResponse struct {
	ID            int64  `json:"prescription_id"`
	Date          string `json:"date"`
	AppointmentID int64  `json:"appointment_id"`
	PatientName   string `json:"patient_name,omitempty"`
	DoctorName    string `json:"doctor_name,omitempty"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}

// MedicineCostResponse is one prescription line annotated with its parsed
// frequency/duration counts and the computed line total.
type MedicineCostResponse struct {
	MedicineID      int64           `json:"medicine_id"`
	MedicineName    string          `json:"medicine_name"`
	Dosage          string          `json:"dosage,omitempty"`
	Frequency       string          `json:"frequency,omitempty"`
	Duration        string          `json:"duration,omitempty"`
	Instructions    string          `json:"instructions,omitempty"`
	Price           decimal.Decimal `json:"price"`
	FrequencyPerDay int             `json:"frequency_per_day"`
	DurationDays    int             `json:"duration_days"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

type PrescriptionCostResponse struct {
	Medicines []MedicineCostResponse `json:"medicines"`
	TotalCost decimal.Decimal        `json:"total_cost"`
}

type CostResponse struct {
	TotalCost decimal.Decimal `json:"total_cost"`
}
