package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/service"
)

func PrescriptionToResponse(p *entity.Prescription) dto.PrescriptionResponse {
	resp := dto.PrescriptionResponse{
		ID:            p.ID,
		Date:          p.Date.Format(dateLayout),
		AppointmentID: p.AppointmentID,
	}
	resp.PatientName = p.Appointment.Patient.Name
	resp.DoctorName = p.Appointment.Doctor.Name
	return resp
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}

func CostToResponse(cost *service.PrescriptionCost) *dto.PrescriptionCostResponse {
	medicines := make([]dto.MedicineCostResponse, 0, len(cost.Medicines))
	for _, m := range cost.Medicines {
		medicines = append(medicines, dto.MedicineCostResponse{
			MedicineID:      m.Line.MedicineID,
			MedicineName:    m.Line.Medicine.Name,
			Dosage:          m.Line.Dosage,
			Frequency:       m.Line.Frequency,
			Duration:        m.Line.Duration,
			Instructions:    m.Line.Instructions,
			Price:           m.Line.Medicine.Price,
			FrequencyPerDay: m.FrequencyPerDay,
			DurationDays:    m.DurationDays,
			TotalPrice:      m.TotalPrice,
		})
	}
	return &dto.PrescriptionCostResponse{
		Medicines: medicines,
		TotalCost: cost.TotalCost,
	}
}
