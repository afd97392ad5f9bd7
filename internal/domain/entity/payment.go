package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Payment is created by a database trigger when a pharmacy order is
// inserted; its amount is the derived prescription cost at order time.
type Payment struct {
	ID        int64           `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"amount"`
	Status    PaymentStatus   `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Order PharmacyOrder `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
