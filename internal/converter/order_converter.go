package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func OrderToResponse(o *entity.PharmacyOrder) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:             o.ID,
		Date:           o.Date.Format(dateLayout),
		Status:         string(o.Status),
		PatientID:      o.PatientID,
		PrescriptionID: o.PrescriptionID,
	}
	if o.Payment != nil {
		resp.PaymentID = &o.Payment.ID
		amount := o.Payment.Amount
		resp.Amount = &amount
		resp.PaymentStatus = string(o.Payment.Status)
	}
	return resp
}

func OrdersToResponses(orders []entity.PharmacyOrder) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, OrderToResponse(&orders[i]))
	}
	return responses
}
