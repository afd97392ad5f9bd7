package dto

import "github.com/shopspring/decimal"

type CreateMedicineRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Type         string          `json:"type" validate:"required,max=100"`
	Manufacturer string          `json:"manufacturer" validate:"required,max=255"`
	Price        decimal.Decimal `json:"price" validate:"required"`
}

type CreateMedicineResponse struct {
	MedicineID int64 `json:"medicine_id"`
}
