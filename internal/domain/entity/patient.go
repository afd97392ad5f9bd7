package entity

import "time"

// Patient represents a demographic record, optionally linked one-to-one
// to a User. The unique index on user_id guarantees at most one patient
// per user even under concurrent lazy creation.
type Patient struct {
	ID          int64     `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string    `gorm:"type:varchar(10);not null" json:"gender"`
	Contact     string    `gorm:"type:varchar(20)" json:"contact,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	UserID      *int64    `gorm:"uniqueIndex:idx_patients_user" json:"user_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
