package entity

import "time"

// LabTest is a catalog entry for an orderable lab test.
type LabTest struct {
	ID          int64     `gorm:"column:test_id;primaryKey;autoIncrement" json:"test_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Type        string    `gorm:"type:varchar(100)" json:"type,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}

// TestStatus represents the status of a requested appointment test.
type TestStatus string

const (
	TestStatusScheduled TestStatus = "Scheduled"
	TestStatusCompleted TestStatus = "Completed"
)

// AppointmentTest links a lab test request to an appointment and holds
// the uploaded report once the test is completed. The report is kept both
// as a retrievable file reference and as a blob for direct serving.
type AppointmentTest struct {
	AppointmentID int64      `gorm:"primaryKey;autoIncrement:false" json:"appointment_id"`
	TestID        int64      `gorm:"primaryKey;autoIncrement:false" json:"test_id"`
	Status        TestStatus `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	ReportURL     string     `gorm:"type:text" json:"report_url,omitempty"`
	ReportFile    []byte     `gorm:"type:bytea" json:"-"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Test        LabTest     `gorm:"foreignKey:TestID" json:"test,omitempty"`
}

func (AppointmentTest) TableName() string {
	return "appointment_tests"
}
