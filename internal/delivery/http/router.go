package http

import (
	"net/http"

	"clinic-backend/internal/delivery/http/handler"
	"clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	orderHandler        *handler.OrderHandler
	paymentHandler      *handler.PaymentHandler
	doctorHandler       *handler.DoctorHandler
	medicineHandler     *handler.MedicineHandler
	patientHandler      *handler.PatientHandler
	labTestHandler      *handler.LabTestHandler
	insightsHandler     *handler.InsightsHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	doctorHandler *handler.DoctorHandler,
	medicineHandler *handler.MedicineHandler,
	patientHandler *handler.PatientHandler,
	labTestHandler *handler.LabTestHandler,
	insightsHandler *handler.InsightsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		orderHandler:        orderHandler,
		paymentHandler:      paymentHandler,
		doctorHandler:       doctorHandler,
		medicineHandler:     medicineHandler,
		patientHandler:      patientHandler,
		labTestHandler:      labTestHandler,
		insightsHandler:     insightsHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Public catalogs
	api.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/medicines", r.medicineHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/labtests", r.labTestHandler.GetAllTests).Methods(http.MethodGet)

	// Patient routes (protected)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)

	protected.HandleFunc("/prescriptions", r.prescriptionHandler.GetMyPrescriptions).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}/cost", r.prescriptionHandler.GetMyCost).Methods(http.MethodGet)

	protected.HandleFunc("/orders", r.orderHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/orders", r.orderHandler.GetMyOrders).Methods(http.MethodGet)

	protected.HandleFunc("/payments", r.paymentHandler.GetMyPayments).Methods(http.MethodGet)

	protected.HandleFunc("/profile", r.patientHandler.GetMyProfile).Methods(http.MethodGet)

	protected.HandleFunc("/labtests/request", r.labTestHandler.RequestTest).Methods(http.MethodPost)
	protected.HandleFunc("/labtests/mine", r.labTestHandler.GetMyTests).Methods(http.MethodGet)
	protected.HandleFunc("/labtests/{appointmentId}/{testId}/report", r.labTestHandler.GetReport).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)

	admin.HandleFunc("/medicines", r.medicineHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/medicines/{id}", r.medicineHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)

	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	admin.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/prescriptions", r.prescriptionHandler.GetAllPrescriptions).Methods(http.MethodGet)
	admin.HandleFunc("/prescriptions/{id}/medicines", r.prescriptionHandler.AddMedicine).Methods(http.MethodPost)
	admin.HandleFunc("/prescriptions/{id}/cost", r.prescriptionHandler.GetCost).Methods(http.MethodGet)
	admin.HandleFunc("/prescriptions/{id}/cost/db", r.prescriptionHandler.GetCostViaFunction).Methods(http.MethodGet)

	admin.HandleFunc("/orders", r.orderHandler.GetAllOrders).Methods(http.MethodGet)

	admin.HandleFunc("/payments", r.paymentHandler.GetAllPayments).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{id}/status", r.paymentHandler.UpdateStatus).Methods(http.MethodPatch)

	admin.HandleFunc("/labtests", r.labTestHandler.CreateTest).Methods(http.MethodPost)
	admin.HandleFunc("/labtests/appointments", r.labTestHandler.GetAllAppointmentTests).Methods(http.MethodGet)
	admin.HandleFunc("/labtests/{appointmentId}/{testId}/report", r.labTestHandler.UploadReport).Methods(http.MethodPost)

	admin.HandleFunc("/insights/patient-ages", r.insightsHandler.GetPatientAges).Methods(http.MethodGet)
	admin.HandleFunc("/insights/prescription-costs", r.insightsHandler.GetPrescriptionCosts).Methods(http.MethodGet)
	admin.HandleFunc("/insights/summary", r.insightsHandler.GetSummary).Methods(http.MethodGet)
	admin.HandleFunc("/insights/audit-logs", r.insightsHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
