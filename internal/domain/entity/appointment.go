package entity

import "time"

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment mode constants
const (
	AppointmentModeOnline    = "Online"
	AppointmentModeInPerson  = "In-Person"
)

// Appointment links a patient and a doctor to a date and time slot.
// The composite unique index on (doctor_id, date, time_slot) is the
// double-booking guard; concurrent bookings for one slot are resolved by
// letting exactly one insert succeed.
type Appointment struct {
	ID        int64             `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	Date      time.Time         `gorm:"type:date;not null;uniqueIndex:idx_appointments_slot" json:"date"`
	TimeSlot  string            `gorm:"type:varchar(20);not null;uniqueIndex:idx_appointments_slot" json:"time_slot"`
	Mode      string            `gorm:"type:varchar(20);not null;default:'Online'" json:"mode"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	PatientID int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID  int64             `gorm:"not null;uniqueIndex:idx_appointments_slot" json:"doctor_id"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCompleted checks if the appointment has been completed.
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
