package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"nuhub-backend/internal/handlers"
	"nuhub-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	examsHandler *handlers.ExamsHandler,
	plannerHandler *handlers.PlannerHandler,
	materialsHandler *handlers.MaterialsHandler,
	reviewsHandler *handlers.ReviewsHandler,
	dashboardHandler *handlers.DashboardHandler,
	storagePath string,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Uploaded material files
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(storagePath))))

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Exam Schedule Routes (public) ────
		r.Route("/exams", func(r chi.Router) {
			r.Get("/", examsHandler.List)
			r.Get("/search", examsHandler.Search)
			r.Get("/schools", examsHandler.Schools)
		})

		// ──── Study Planner Routes ────
		r.Route("/planner", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/estimate", plannerHandler.Estimate)
			r.Post("/plans", plannerHandler.CreatePlan)
			r.Get("/sessions", plannerHandler.ListSessions)
			r.Put("/sessions/{id}/toggle", plannerHandler.ToggleSession)
			r.Delete("/sessions/{id}", plannerHandler.DeleteSession)
		})

		// ──── Material Routes ────
		r.Route("/materials", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", materialsHandler.List)
			r.Post("/", materialsHandler.Upload)
			r.Delete("/{id}", materialsHandler.Delete)
		})

		// ──── Course Review Routes ────
		r.Route("/reviews", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", reviewsHandler.List)
			r.Post("/", reviewsHandler.Create)
			r.Delete("/{id}", reviewsHandler.Delete)
		})

		// ──── Dashboard Routes ────
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/stats", dashboardHandler.Stats)
			r.Get("/next", dashboardHandler.NextExams)
			r.Get("/week", dashboardHandler.Week)
		})
	})

	return r
}
