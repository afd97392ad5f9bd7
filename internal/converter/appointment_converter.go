package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func AppointmentToResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:          a.ID,
		Date:        a.Date.Format(dateLayout),
		TimeSlot:    a.TimeSlot,
		Mode:        a.Mode,
		Status:      string(a.Status),
		DoctorID:    a.DoctorID,
		DoctorName:  a.Doctor.Name,
		PatientID:   a.PatientID,
		PatientName: a.Patient.Name,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, AppointmentToResponse(&appointments[i]))
	}
	return responses
}
