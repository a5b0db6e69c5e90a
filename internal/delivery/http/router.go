package http

import (
	"net/http"

	"court-booking-backend/internal/delivery/http/handler"
	"court-booking-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	locationHandler     *handler.LocationHandler
	courtHandler        *handler.CourtHandler
	bookingHandler      *handler.BookingHandler
	ownerBookingHandler *handler.OwnerBookingHandler
	promotionHandler    *handler.PromotionHandler
	statisticsHandler   *handler.StatisticsHandler
	userAdminHandler    *handler.UserAdminHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	locationHandler *handler.LocationHandler,
	courtHandler *handler.CourtHandler,
	bookingHandler *handler.BookingHandler,
	ownerBookingHandler *handler.OwnerBookingHandler,
	promotionHandler *handler.PromotionHandler,
	statisticsHandler *handler.StatisticsHandler,
	userAdminHandler *handler.UserAdminHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		locationHandler:     locationHandler,
		courtHandler:        courtHandler,
		bookingHandler:      bookingHandler,
		ownerBookingHandler: ownerBookingHandler,
		promotionHandler:    promotionHandler,
		statisticsHandler:   statisticsHandler,
		userAdminHandler:    userAdminHandler,
		auditLogHandler:     auditLogHandler,
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
	auth.HandleFunc("/register", r.authHandler.RegisterPlayer).Methods(http.MethodPost)
	auth.HandleFunc("/register-owner", r.authHandler.RegisterOwner).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Public browsing routes
	api.HandleFunc("/locations", r.locationHandler.GetLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", r.locationHandler.GetLocation).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}/courts", r.courtHandler.GetCourtsByLocation).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id}/slots", r.courtHandler.GetCourtSlots).Methods(http.MethodGet)

	// Player routes (protected - player only)
	player := api.PathPrefix("/bookings").Subrouter()
	player.Use(r.authMiddleware.Authenticate)
	player.Use(middleware.RequirePlayer)
	player.HandleFunc("", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	player.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	player.HandleFunc("/{id}", r.bookingHandler.CancelBooking).Methods(http.MethodDelete)

	// Owner routes (protected - owner only)
	owner := api.PathPrefix("/owner").Subrouter()
	owner.Use(r.authMiddleware.Authenticate)
	owner.Use(middleware.RequireOwner)

	owner.HandleFunc("/locations", r.locationHandler.CreateLocation).Methods(http.MethodPost)
	owner.HandleFunc("/locations", r.locationHandler.GetMyLocations).Methods(http.MethodGet)
	owner.HandleFunc("/locations/{id}", r.locationHandler.UpdateLocation).Methods(http.MethodPut)
	owner.HandleFunc("/locations/{id}", r.locationHandler.DeleteLocation).Methods(http.MethodDelete)

	owner.HandleFunc("/courts", r.courtHandler.CreateCourt).Methods(http.MethodPost)
	owner.HandleFunc("/courts/{id}", r.courtHandler.UpdateCourt).Methods(http.MethodPut)
	owner.HandleFunc("/courts/{id}", r.courtHandler.DeleteCourt).Methods(http.MethodDelete)

	owner.HandleFunc("/bookings", r.ownerBookingHandler.GetLocationBookings).Methods(http.MethodGet)
	owner.HandleFunc("/bookings/{id}/status", r.ownerBookingHandler.UpdateBookingStatus).Methods(http.MethodPut)

	owner.HandleFunc("/promotions", r.promotionHandler.CreatePromotion).Methods(http.MethodPost)
	owner.HandleFunc("/locations/{id}/promotions", r.promotionHandler.GetPromotionsByLocation).Methods(http.MethodGet)
	owner.HandleFunc("/promotions/{id}", r.promotionHandler.UpdatePromotion).Methods(http.MethodPut)
	owner.HandleFunc("/promotions/{id}", r.promotionHandler.DeletePromotion).Methods(http.MethodDelete)

	owner.HandleFunc("/statistics/revenue", r.statisticsHandler.GetRevenue).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.userAdminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/activate", r.userAdminHandler.ActivateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/deactivate", r.userAdminHandler.DeactivateUser).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
