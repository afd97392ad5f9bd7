package dto

type CreateAppointmentRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"time_slot" validate:"required,max=20"`
	Mode     string `json:"mode" validate:"omitempty,oneof=Online In-Person"`
	DoctorID int64  `json:"doctor_id" validate:"required,gt=0"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
}

type AppointmentResponse struct {
	ID          int64  `json:"appointment_id"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Mode        string `json:"mode"`
	Status      string `json:"status"`
	DoctorID    int64  `json:"doctor_id"`
	DoctorName  string `json:"doctor_name,omitempty"`
	PatientID   int64  `json:"patient_id,omitempty"`
	PatientName string `json:"patient_name,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
