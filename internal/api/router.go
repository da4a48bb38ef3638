package api

import (
	"net/http"

	"clinic-api/internal/api/handlers"
	"clinic-api/internal/api/middleware"
	"clinic-api/internal/config"
	"clinic-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	appointmentHandler := handlers.NewAppointmentHandler(services.Appointment)

	// Credential endpoints; registration and login are rate limited per IP
	rl := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	r.Group(func(r chi.Router) {
		r.Use(rl.Limit)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})
	r.Post("/reset_password", authHandler.ResetPassword)

	// Appointment endpoints require a valid session token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))
		r.Post("/book_appointment", appointmentHandler.Book)
		r.Post("/cancel_appointment", appointmentHandler.Cancel)
		r.Get("/get_appointments", appointmentHandler.List)
	})

	return r
}
