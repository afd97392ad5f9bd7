package dto

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Specialty      string `json:"specialty" validate:"required,max=100"`
	Qualifications string `json:"qualifications"`
	Experience     int    `json:"experience" validate:"gte=0"`
}

type CreateDoctorResponse struct {
	DoctorID int64 `json:"doctor_id"`
}
