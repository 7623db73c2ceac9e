package http

import (
	"net/http"

	"ombaro-backend/internal/delivery/http/handler"
	"ombaro-backend/internal/delivery/http/middleware"
	"ombaro-backend/internal/domain/access"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	registry         *access.Registry
	authHandler      *handler.AuthHandler
	bookingHandler   *handler.BookingHandler
	trackingHandler  *handler.TrackingHandler
	vendorHandler    *handler.VendorHandler
	therapistHandler *handler.TherapistHandler
	dashboardHandler *handler.DashboardHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	registry *access.Registry,
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	trackingHandler *handler.TrackingHandler,
	vendorHandler *handler.VendorHandler,
	therapistHandler *handler.TherapistHandler,
	dashboardHandler *handler.DashboardHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		registry:         registry,
		authHandler:      authHandler,
		bookingHandler:   bookingHandler,
		trackingHandler:  trackingHandler,
		vendorHandler:    vendorHandler,
		therapistHandler: therapistHandler,
		dashboardHandler: dashboardHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/otp/send", r.authHandler.SendOTP).Methods(http.MethodPost)
	auth.HandleFunc("/otp/verify", r.authHandler.VerifyOTP).Methods(http.MethodPost)
	auth.HandleFunc("/portal/login", r.authHandler.PortalLogin).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/profile", r.authHandler.CompleteProfile).Methods(http.MethodPut)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Role directory (public: the role-selection screen precedes login)
	api.HandleFunc("/roles", r.dashboardHandler.GetRoleDirectory).Methods(http.MethodGet)

	// Vendor catalog (public browsing)
	api.HandleFunc("/vendors", r.vendorHandler.GetVendors).Methods(http.MethodGet)
	api.HandleFunc("/vendors/nearby", r.vendorHandler.GetNearbyVendors).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{id}", r.vendorHandler.GetVendor).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{id}/services", r.vendorHandler.GetVendorServices).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{id}/therapists", r.therapistHandler.GetTherapistsByVendor).Methods(http.MethodGet)
	api.HandleFunc("/therapists/{id}", r.therapistHandler.GetTherapist).Methods(http.MethodGet)

	// Customer booking routes
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.Use(middleware.RequireCustomer)
	bookings.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.CancelBooking).Methods(http.MethodDelete)
	bookings.HandleFunc("/{id}/payment", r.bookingHandler.ConfirmPayment).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/reschedule", r.bookingHandler.RescheduleBooking).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}/tracking", r.trackingHandler.GetTracking).Methods(http.MethodGet)

	// Operator routes: lifecycle transitions are server-side writes, never
	// client timers
	ops := api.PathPrefix("/ops/bookings").Subrouter()
	ops.Use(r.authMiddleware.Authenticate)
	ops.Use(middleware.RequireRole(access.RoleEmployee, access.RoleVendor, access.RoleAdmin, access.RoleSuperAdmin))
	ops.HandleFunc("/{id}/advance", r.trackingHandler.AdvanceBooking).Methods(http.MethodPost)
	ops.HandleFunc("/{id}/assign", r.trackingHandler.AssignTherapist).Methods(http.MethodPost)

	// Therapist self-service routes
	therapists := api.PathPrefix("/therapists").Subrouter()
	therapists.Use(r.authMiddleware.Authenticate)
	therapists.Use(middleware.RequireRole(access.RoleEmployee, access.RoleVendor, access.RoleAdmin, access.RoleSuperAdmin))
	therapists.HandleFunc("/{id}/location", r.therapistHandler.UpdateLocation).Methods(http.MethodPut)
	therapists.HandleFunc("/{id}/availability", r.therapistHandler.UpdateAvailability).Methods(http.MethodPut)

	// Vendor staffing routes
	staffing := api.PathPrefix("/vendors").Subrouter()
	staffing.Use(r.authMiddleware.Authenticate)
	staffing.HandleFunc("/{id}/therapists/available", r.therapistHandler.GetAvailableTherapists).Methods(http.MethodGet)

	// Portal dashboard
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.HandleFunc("/modules", r.dashboardHandler.GetVisibleModules).Methods(http.MethodGet)
	dashboard.HandleFunc("/modules/{id}", r.dashboardHandler.GetModuleContent).Methods(http.MethodGet)

	// Audit trail: audit:read is held by IT and CA/CS roles, and by the
	// super admin through the wildcard
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequirePermission(r.registry, "audit:read"))
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
