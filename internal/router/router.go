package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"toolbox-backend/internal/handlers"
	"toolbox-backend/internal/middleware"
	"toolbox-backend/internal/web"
)

func New(
	statusHandler *handlers.StatusHandler,
	chatHandler *handlers.ChatHandler,
	imageHandler *handlers.ImageHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", statusHandler.Status)
		r.Post("/chat", chatHandler.Send)
		r.Post("/images", imageHandler.Generate)
	})

	// Embedded browser UI
	r.Handle("/*", web.Handler())

	return r
}
