package entity

import "time"

// Doctor represents a provider record with an independent, admin-managed
// lifecycle.
type Doctor struct {
	ID             int64     `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty      string    `gorm:"type:varchar(100);index" json:"specialty"`
	Qualifications string    `gorm:"type:text" json:"qualifications,omitempty"`
	Experience     int       `gorm:"default:0" json:"experience"`
	Ratings        *float64  `gorm:"type:decimal(3,1)" json:"ratings,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
