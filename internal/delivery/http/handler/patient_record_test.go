package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/service"

	"github.com/gorilla/mux"
)

// Stubs returning ErrPatientNotFound on the patient-scoped reads, so the
// handlers' status mapping can be checked without a database.

type stubAppointmentUsecase struct{}

func (s *stubAppointmentUsecase) Book(_ context.Context, _ *dto.CreateAppointmentRequest) error {
	return nil
}

func (s *stubAppointmentUsecase) GetMyAppointments(_ context.Context) (*dto.AppointmentListResponse, error) {
	return nil, service.ErrPatientNotFound
}

func (s *stubAppointmentUsecase) GetAllAppointments(_ context.Context) (*dto.AppointmentListResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) UpdateStatus(_ context.Context, _ int64, _ entity.AppointmentStatus) error {
	return nil
}

type stubOrderUsecase struct{}

func (s *stubOrderUsecase) Create(_ context.Context, _ *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	return nil, nil
}

func (s *stubOrderUsecase) GetMyOrders(_ context.Context) (*dto.OrderListResponse, error) {
	return nil, service.ErrPatientNotFound
}

func (s *stubOrderUsecase) GetAllOrders(_ context.Context) (*dto.OrderListResponse, error) {
	return nil, nil
}

type stubPrescriptionUsecase struct{}

func (s *stubPrescriptionUsecase) Create(_ context.Context, _ *dto.CreatePrescriptionRequest) error {
	return nil
}

func (s *stubPrescriptionUsecase) AddMedicine(_ context.Context, _ int64, _ *dto.AddMedicineRequest) error {
	return nil
}

func (s *stubPrescriptionUsecase) GetMyPrescriptions(_ context.Context) (*dto.PrescriptionListResponse, error) {
	return nil, service.ErrPatientNotFound
}

func (s *stubPrescriptionUsecase) GetAllPrescriptions(_ context.Context) (*dto.PrescriptionListResponse, error) {
	return nil, nil
}

func (s *stubPrescriptionUsecase) GetCostBreakdown(_ context.Context, _ int64) (*dto.PrescriptionCostResponse, error) {
	return nil, nil
}

func (s *stubPrescriptionUsecase) GetMyCostBreakdown(_ context.Context, _ int64) (*dto.PrescriptionCostResponse, error) {
	return nil, service.ErrPatientNotFound
}

func (s *stubPrescriptionUsecase) GetCostViaFunction(_ context.Context, _ int64) (*dto.CostResponse, error) {
	return nil, nil
}

func TestMissingPatientRecordReturnsNotFound(t *testing.T) {
	appointmentHandler := NewAppointmentHandler(&stubAppointmentUsecase{}, nil)
	orderHandler := NewOrderHandler(&stubOrderUsecase{}, nil)
	prescriptionHandler := NewPrescriptionHandler(&stubPrescriptionUsecase{}, nil)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		path    string
	}{
		{"MyAppointments", appointmentHandler.GetMyAppointments, "/appointments"},
		{"MyOrders", orderHandler.GetMyOrders, "/orders"},
		{"MyPrescriptions", prescriptionHandler.GetMyPrescriptions, "/prescriptions"},
		{"MyPrescriptionCost", prescriptionHandler.GetMyCost, "/prescriptions/1/cost"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req = mux.SetURLVars(req, map[string]string{"id": "1"})
			rec := httptest.NewRecorder()

			tc.handler(rec, req)

			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
			}
		})
	}
}
