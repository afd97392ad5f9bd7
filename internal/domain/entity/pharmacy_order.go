package entity

import "time"

// OrderStatus represents the status of a pharmacy order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// PharmacyOrder links a patient to one of their prescriptions. A database
// trigger creates the corresponding Payment row on insert.
type PharmacyOrder struct {
	ID             int64       `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	Date           time.Time   `gorm:"type:date;not null" json:"date"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	PatientID      int64       `gorm:"not null;index" json:"patient_id"`
	PrescriptionID int64       `gorm:"not null;index" json:"prescription_id"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Prescription Prescription `gorm:"foreignKey:PrescriptionID" json:"prescription,omitempty"`
	Payment      *Payment     `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
}

func (PharmacyOrder) TableName() string {
	return "pharmacy_orders"
}
