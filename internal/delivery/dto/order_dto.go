package dto

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	PrescriptionID int64 `json:"prescription_id" validate:"required,gt=0"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

type OrderResponse struct {
	ID             int64            `json:"order_id"`
	Date           string           `json:"date"`
	Status         string           `json:"status"`
	PatientID      int64            `json:"patient_id"`
	PrescriptionID int64            `json:"prescription_id"`
	PaymentID      *int64           `json:"payment_id,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	PaymentStatus  string           `json:"payment_status,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
