package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"textlens-backend/internal/handlers"
	"textlens-backend/internal/middleware"
)

func New(
	analyzeHandler *handlers.AnalyzeHandler,
	imageHandler *handlers.ImageHandler,
	summarizeHandler *handlers.SummarizeHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Every analysis endpoint makes one upstream Gemini call, so keep a
	// per-IP lid on them (30 req/min).
	aiLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(aiLimiter.Middleware)
			r.Post("/analyze", analyzeHandler.Analyze)
			r.Post("/analyze-image", imageHandler.AnalyzeImage)
			r.Post("/analyze-document", analyzeHandler.AnalyzeDocument)
			r.Post("/summarize", summarizeHandler.Summarize)
		})

		r.Get("/summaries", summarizeHandler.List)
		r.Get("/summaries/{id}", summarizeHandler.Get)
	})

	return r
}
