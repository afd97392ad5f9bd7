package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is a catalog entry with a unit price.
type Medicine struct {
	ID           int64           `gorm:"column:medicine_id;primaryKey;autoIncrement" json:"medicine_id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Type         string          `gorm:"type:varchar(100)" json:"type,omitempty"`
	Manufacturer string          `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
