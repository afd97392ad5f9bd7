package dto

import "github.com/shopspring/decimal"

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Failed"`
}

type PaymentResponse struct {
	ID             int64           `json:"payment_id"`
	OrderID        int64           `json:"order_id"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	PrescriptionID int64           `json:"prescription_id,omitempty"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
