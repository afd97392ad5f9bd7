package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func AppointmentTestToResponse(at *entity.AppointmentTest) dto.AppointmentTestResponse {
	resp := dto.AppointmentTestResponse{
		AppointmentID: at.AppointmentID,
		TestID:        at.TestID,
		TestName:      at.Test.Name,
		Status:        string(at.Status),
		ReportURL:     at.ReportURL,
	}
	if !at.Appointment.Date.IsZero() {
		resp.AppointmentDate = at.Appointment.Date.Format(dateLayout)
		resp.DoctorID = at.Appointment.DoctorID
		resp.PatientID = at.Appointment.PatientID
	}
	return resp
}

func AppointmentTestsToResponses(tests []entity.AppointmentTest) []dto.AppointmentTestResponse {
	responses := make([]dto.AppointmentTestResponse, 0, len(tests))
	for i := range tests {
		responses = append(responses, AppointmentTestToResponse(&tests[i]))
	}
	return responses
}
