package http

import (
	"net/http"

	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	patientHandler     *handler.PatientHandler
	dentistHandler     *handler.DentistHandler
	treatmentHandler   *handler.TreatmentHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	dentistHandler *handler.DentistHandler,
	treatmentHandler *handler.TreatmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		patientHandler:     patientHandler,
		dentistHandler:     dentistHandler,
		treatmentHandler:   treatmentHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
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
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Availability check is the one public business route. Registered before
	// the protected appointments subrouter so it wins the exact-path match.
	api.HandleFunc("/appointments/check-availability", r.appointmentHandler.CheckAvailability).Methods(http.MethodGet)

	// Appointments (protected). Update carries the id in the body.
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.FindAll).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.FindByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Patients (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.FindAll).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.FindByID).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Dentists: reads need authentication, mutations need the admin role
	dentists := api.PathPrefix("/dentists").Subrouter()
	dentists.Use(r.authMiddleware.Authenticate)
	dentists.HandleFunc("", r.dentistHandler.FindAll).Methods(http.MethodGet)
	dentists.HandleFunc("/registration/{registration}", r.dentistHandler.FindByRegistration).Methods(http.MethodGet)
	dentists.HandleFunc("/{id}", r.dentistHandler.FindByID).Methods(http.MethodGet)

	dentistsAdmin := api.PathPrefix("/dentists").Subrouter()
	dentistsAdmin.Use(r.authMiddleware.Authenticate)
	dentistsAdmin.Use(middleware.RequireAdmin)
	dentistsAdmin.HandleFunc("", r.dentistHandler.Create).Methods(http.MethodPost)
	dentistsAdmin.HandleFunc("", r.dentistHandler.Update).Methods(http.MethodPut)
	dentistsAdmin.HandleFunc("/{id}", r.dentistHandler.Delete).Methods(http.MethodDelete)

	// Treatments: reads need authentication, mutations need the admin role
	treatments := api.PathPrefix("/treatments").Subrouter()
	treatments.Use(r.authMiddleware.Authenticate)
	treatments.HandleFunc("", r.treatmentHandler.FindAll).Methods(http.MethodGet)
	treatments.HandleFunc("/{id}", r.treatmentHandler.FindByID).Methods(http.MethodGet)

	treatmentsAdmin := api.PathPrefix("/treatments").Subrouter()
	treatmentsAdmin.Use(r.authMiddleware.Authenticate)
	treatmentsAdmin.Use(middleware.RequireAdmin)
	treatmentsAdmin.HandleFunc("", r.treatmentHandler.Create).Methods(http.MethodPost)
	treatmentsAdmin.HandleFunc("/{id}", r.treatmentHandler.Update).Methods(http.MethodPut)
	treatmentsAdmin.HandleFunc("/{id}", r.treatmentHandler.Delete).Methods(http.MethodDelete)

	// Audit logs (admin only)
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.Use(middleware.RequireAdmin)
	auditLogs.HandleFunc("", r.auditLogHandler.FindAll).Methods(http.MethodGet)
	auditLogs.HandleFunc("/{id}", r.auditLogHandler.FindByID).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
