package handler

import (
	"net/http"
	"strconv"

	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
)

type InsightsHandler struct {
	insightsUsecase usecase.InsightsUsecase
}

func NewInsightsHandler(insightsUsecase usecase.InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{
		insightsUsecase: insightsUsecase,
	}
}

func (h *InsightsHandler) GetPatientAges(w http.ResponseWriter, r *http.Request) {
	rows, err := h.insightsUsecase.GetPatientAges(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patient ages")
		return
	}

	response.Success(w, http.StatusOK, "Patient ages retrieved successfully", rows)
}

func (h *InsightsHandler) GetPrescriptionCosts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.insightsUsecase.GetPrescriptionCosts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get prescription costs")
		return
	}

	response.Success(w, http.StatusOK, "Prescription costs retrieved successfully", rows)
}

func (h *InsightsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.insightsUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get activity summary")
		return
	}

	response.Success(w, http.StatusOK, "Activity summary retrieved successfully", summary)
}

func (h *InsightsHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.insightsUsecase.GetRecentAuditLogs(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
