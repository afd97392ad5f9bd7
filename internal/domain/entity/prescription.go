package entity

import "time"

// Prescription is one-to-one with an appointment; the unique index on
// appointment_id enforces at most one prescription per appointment.
type Prescription struct {
	ID            int64     `gorm:"column:prescription_id;primaryKey;autoIncrement" json:"prescription_id"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	AppointmentID int64     `gorm:"not null;uniqueIndex:idx_prescriptions_appointment" json:"appointment_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment            `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Medicines   []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID" json:"medicines,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionMedicine is one medicine line item within a prescription.
// Frequency and duration are free text (e.g. "twice a day", "5 days");
// cost derivation extracts the first integer token from each.
type PrescriptionMedicine struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID int64  `gorm:"not null;index" json:"prescription_id"`
	MedicineID     int64  `gorm:"not null;index" json:"medicine_id"`
	Dosage         string `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Frequency      string `gorm:"type:varchar(100)" json:"frequency,omitempty"`
	Duration       string `gorm:"type:varchar(100)" json:"duration,omitempty"`
	Instructions   string `gorm:"type:text" json:"instructions,omitempty"`

	// Relationships
	Prescription Prescription `gorm:"foreignKey:PrescriptionID" json:"prescription,omitempty"`
	Medicine     Medicine     `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}
