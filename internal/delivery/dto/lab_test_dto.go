package dto

type CreateLabTestRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Type        string `json:"type" validate:"omitempty,max=100"`
	Description string `json:"description"`
}

type CreateLabTestResponse struct {
	TestID int64 `json:"test_id"`
}

type RequestTestRequest struct {
	AppointmentID int64 `json:"appointment_id" validate:"required,gt=0"`
	TestID        int64 `json:"test_id" validate:"required,gt=0"`
}

type AppointmentTestResponse struct {
	AppointmentID   int64  `json:"appointment_id"`
	TestID          int64  `json:"test_id"`
	TestName        string `json:"test_name"`
	Status          string `json:"status"`
	ReportURL       string `json:"report_url,omitempty"`
	AppointmentDate string `json:"appointment_date,omitempty"`
	DoctorID        int64  `json:"doctor_id,omitempty"`
	PatientID       int64  `json:"patient_id,omitempty"`
}

type AppointmentTestListResponse struct {
	Tests []AppointmentTestResponse `json:"tests"`
	Total int                       `json:"total"`
}

type UploadReportResponse struct {
	ReportURL string `json:"report_url"`
}
