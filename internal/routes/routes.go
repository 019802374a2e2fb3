package routes

import (
	"net/http"

	"github.com/GargManasvini/mini-healthcare-platform/internal/auth"
	"github.com/GargManasvini/mini-healthcare-platform/internal/handlers"
	"github.com/GargManasvini/mini-healthcare-platform/internal/middleware"
	"github.com/GargManasvini/mini-healthcare-platform/internal/store"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	statusHandler *handlers.StatusHandler,
	issuer *auth.TokenIssuer,
	users store.UserStore,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Service health probes
	mux.HandleFunc("/healthz", statusHandler.HealthCheck)
	mux.HandleFunc("/livez", statusHandler.LivenessCheck)
	mux.HandleFunc("/readyz", statusHandler.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("/api/auth/signup", authHandler.Signup)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)

	// Protected wellness routes
	mux.HandleFunc("/api/health", middleware.AuthMiddleware(healthHandler.Submit, issuer, users))
	mux.HandleFunc("/api/health/history", middleware.AuthMiddleware(healthHandler.History, issuer, users))

	return mux
}
