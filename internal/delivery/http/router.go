package http

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes.
// Read routes register without a method so the handlers can answer non-GET
// requests with 405 and an Allow header themselves.
func NewRouter(
	listing *controllers.ListingController,
	admin *controllers.AdminController,
	auth *controllers.AuthController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public reads
	mux.HandleFunc("/events", listing.Events)
	mux.HandleFunc("/events/{category}", listing.EventsByCategory)
	mux.HandleFunc("/health", listing.Health)

	// Auth
	requireAuth := middleware.RequireAuth(verifier, logger)
	mux.HandleFunc("POST /auth/signup", auth.SignUp)
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("GET /auth/me", requireAuth(auth.Me))

	// Admin
	mux.HandleFunc("GET /admin/events", requireAuth(admin.ListEvents))
	mux.HandleFunc("POST /admin/events", requireAuth(admin.CreateEvent))
	mux.HandleFunc("PUT /admin/events/{id}", requireAuth(admin.UpdateEvent))
	mux.HandleFunc("DELETE /admin/events/{id}", requireAuth(admin.DeleteEvent))
	mux.HandleFunc("POST /admin/events/{id}/days/{slot}", requireAuth(admin.CreateDay))
	mux.HandleFunc("PUT /admin/days/{slot}/{id}", requireAuth(admin.UpdateDay))
	mux.HandleFunc("DELETE /admin/days/{slot}/{id}", requireAuth(admin.DeleteDay))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
