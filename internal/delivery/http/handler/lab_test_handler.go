package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/service"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

// maxReportSize caps uploaded report files at 10 MB.
const maxReportSize = 10 << 20

type LabTestHandler struct {
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
}

func NewLabTestHandler(labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator) *LabTestHandler {
	return &LabTestHandler{
		labTestUsecase: labTestUsecase,
		validator:      validator,
	}
}

func (h *LabTestHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.labTestUsecase.CreateTest(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create lab test")
		return
	}

	response.Success(w, http.StatusCreated, "Lab test created successfully", test)
}

func (h *LabTestHandler) GetAllTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.labTestUsecase.GetAllTests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab tests")
		return
	}

	response.Success(w, http.StatusOK, "Lab tests retrieved successfully", tests)
}

func (h *LabTestHandler) RequestTest(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.labTestUsecase.RequestTest(r.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrPatientNotFound:
			response.NotFound(w, "Patient record not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Lab test not found")
		case usecase.ErrTestAlreadyRequested:
			response.Conflict(w, "Test already requested for this appointment")
		default:
			response.InternalServerError(w, "Failed to request lab test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab test requested successfully", nil)
}

// UploadReport accepts a multipart form with the report under the
// "report" field.
func (h *LabTestHandler) UploadReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}
	testID, err := strconv.ParseInt(vars["testId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxReportSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("report")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Report file is required", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxReportSize+1))
	if err != nil {
		response.InternalServerError(w, "Failed to read report file")
		return
	}
	if len(content) > maxReportSize {
		response.Error(w, http.StatusRequestEntityTooLarge, "Report file too large", nil)
		return
	}

	report, err := h.labTestUsecase.UploadReport(r.Context(), appointmentID, testID, header.Filename, content)
	if err != nil {
		switch err {
		case usecase.ErrTestRequestNotFound:
			response.NotFound(w, "Test request not found for this appointment")
		default:
			response.InternalServerError(w, "Failed to upload report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report uploaded successfully", report)
}

func (h *LabTestHandler) GetMyTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.labTestUsecase.GetMyTests(r.Context())
	if err != nil {
		switch err {
		case service.ErrPatientNotFound:
			response.NotFound(w, "Patient record not found")
		default:
			response.InternalServerError(w, "Failed to get lab tests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab tests retrieved successfully", tests)
}

func (h *LabTestHandler) GetAllAppointmentTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.labTestUsecase.GetAllAppointmentTests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment tests")
		return
	}

	response.Success(w, http.StatusOK, "Appointment tests retrieved successfully", tests)
}

// GetReport streams the stored report blob as a download.
func (h *LabTestHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}
	testID, err := strconv.ParseInt(vars["testId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	content, err := h.labTestUsecase.GetReport(r.Context(), appointmentID, testID)
	if err != nil {
		switch err {
		case service.ErrPatientNotFound:
			response.NotFound(w, "Patient record not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrReportNotFound:
			response.NotFound(w, "No report found for this test")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	filename := fmt.Sprintf("report_%d_%d", appointmentID, testID)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
