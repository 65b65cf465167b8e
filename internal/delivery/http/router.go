package http

import (
	"net/http"

	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	rootHandler        *handler.RootHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	rootHandler *handler.RootHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		rootHandler:        rootHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Root endpoints
	r.router.HandleFunc("/", r.rootHandler.Home).Methods(http.MethodGet)
	r.router.HandleFunc("/api/test", r.rootHandler.APITest).Methods(http.MethodGet)

	// Patients. Literal paths are registered before /{id} so that
	// "search", "count" and "recent" are not captured as ids.
	patients := r.router.PathPrefix("/api/patients").Subrouter()
	patients.HandleFunc("/search", r.patientHandler.Search).Methods(http.MethodGet)
	patients.HandleFunc("/count", r.patientHandler.Count).Methods(http.MethodGet)
	patients.HandleFunc("/recent", r.patientHandler.Recent).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.GetAll).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Appointments
	appointments := r.router.PathPrefix("/api/appointments").Subrouter()
	appointments.HandleFunc("/search", r.appointmentHandler.Search).Methods(http.MethodGet)
	appointments.HandleFunc("/today", r.appointmentHandler.Today).Methods(http.MethodGet)
	appointments.HandleFunc("/upcoming", r.appointmentHandler.Upcoming).Methods(http.MethodGet)
	appointments.HandleFunc("/week", r.appointmentHandler.ThisWeek).Methods(http.MethodGet)
	appointments.HandleFunc("/month", r.appointmentHandler.ThisMonth).Methods(http.MethodGet)
	appointments.HandleFunc("/date-range", r.appointmentHandler.DateRange).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Dashboard
	dashboard := r.router.PathPrefix("/api/dashboard").Subrouter()
	dashboard.HandleFunc("/stats", r.dashboardHandler.Stats).Methods(http.MethodGet)
	dashboard.HandleFunc("/recent-activity", r.dashboardHandler.RecentActivity).Methods(http.MethodGet)
	dashboard.HandleFunc("/quick-stats", r.dashboardHandler.QuickStats).Methods(http.MethodGet)

	// Framework-level errors use a uniform JSON envelope.
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Envelope(w, req, http.StatusNotFound, "Endpoint not found - Check API documentation at /")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Envelope(w, req, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}
