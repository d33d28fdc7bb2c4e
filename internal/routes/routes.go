package routes

import (
	"io/fs"
	"net/http"

	"github.com/alfieapp/quarterly/assets"
	"github.com/alfieapp/quarterly/internal/app"
	"github.com/alfieapp/quarterly/internal/handler"
	"github.com/alfieapp/quarterly/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService, app.Sessions)
	dashboard := handler.NewDashboardHandler(app.QuarterService, app.Sessions)
	onboarding := handler.NewOnboardingHandler(app.QuarterService, app.Sessions)
	quarter := handler.NewQuarterHandler(app.QuarterService, app.Sessions)
	meeting := handler.NewMeetingHandler(app.Sessions)
	deal := handler.NewDealHandler(app.Sessions)
	goal := handler.NewGoalHandler(app.Sessions)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("GET /auth", middleware.RequireGuest(auth.AuthPage))
	mux.HandleFunc("POST /auth/register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Dashboard
	mux.HandleFunc("GET /app/dashboard", middleware.RequireAuth(dashboard.DashboardPage))

	// Onboarding
	mux.HandleFunc("GET /app/onboarding", middleware.RequireAuth(onboarding.OnboardingPage))
	mux.HandleFunc("POST /app/onboarding/quarter", middleware.RequireAuth(onboarding.SubmitQuarter))
	mux.HandleFunc("POST /app/onboarding/goals", middleware.RequireAuth(onboarding.SubmitGoals))

	// Quarters
	mux.HandleFunc("GET /app/quarters", middleware.RequireAuth(quarter.QuartersPage))
	mux.HandleFunc("POST /app/quarters", middleware.RequireAuth(quarter.Create))
	mux.HandleFunc("POST /app/quarters/{id}/select", middleware.RequireAuth(quarter.Select))

	// Meetings
	mux.HandleFunc("POST /app/meetings", middleware.RequireAuth(meeting.Create))
	mux.HandleFunc("PATCH /app/meetings/{id}", middleware.RequireAuth(meeting.UpdateOutcome))
	mux.HandleFunc("DELETE /app/meetings/{id}", middleware.RequireAuth(meeting.Delete))

	// Deals
	mux.HandleFunc("POST /app/deals", middleware.RequireAuth(deal.Create))
	mux.HandleFunc("PATCH /app/deals/{id}", middleware.RequireAuth(deal.UpdateValue))
	mux.HandleFunc("DELETE /app/deals/{id}", middleware.RequireAuth(deal.Delete))

	// Goals
	mux.HandleFunc("PUT /app/goals", middleware.RequireAuth(goal.Update))

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
		middleware.WithURLPath,
	)

	return h
}
