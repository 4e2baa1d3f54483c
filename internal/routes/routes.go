package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fittrackapp/fittrack/internal/app"
	"github.com/fittrackapp/fittrack/internal/handler"
	"github.com/fittrackapp/fittrack/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	account := handler.NewAccountHandler(app.UserService, app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	progress := handler.NewProgressHandler(app.ProgressService)
	dashboard := handler.NewDashboardHandler(app.GoalService)
	community := handler.NewCommunityHandler(app.CommunityService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Account / settings
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(account.Me))
	mux.HandleFunc("PUT /api/me", middleware.RequireAuth(account.Update))
	mux.HandleFunc("DELETE /api/me", middleware.RequireAuth(account.Delete))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /api/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Progress ledger
	mux.HandleFunc("GET /api/goals/{id}/progress", middleware.RequireAuth(progress.ListForGoal))
	mux.HandleFunc("POST /api/goals/{id}/progress", middleware.RequireAuth(progress.Create))
	mux.HandleFunc("PUT /api/progress/{id}", middleware.RequireAuth(progress.Update))
	mux.HandleFunc("DELETE /api/progress/{id}", middleware.RequireAuth(progress.Delete))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Summary))

	// Community feed
	mux.HandleFunc("GET /api/feed", middleware.RequireAuth(community.Feed))
	mux.HandleFunc("POST /api/posts", middleware.RequireAuth(community.Create))
	mux.HandleFunc("DELETE /api/posts/{id}", middleware.RequireAuth(community.Delete))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.SecurityHeaders,
		middleware.Metrics,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)
}
