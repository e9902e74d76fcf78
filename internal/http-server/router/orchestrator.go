package router

import (
	"net/http"

	"vpaas/internal/http-server/handler/video"
	"vpaas/internal/http-server/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type OrchestratorHandler struct {
	VideoHandler *video.VideoHandler
}

func SetupOrchestratorRouter(h *OrchestratorHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.VideoHandler.Hello)
	r.Get("/health", health)
	r.Post("/videos", h.VideoHandler.UploadVideo)

	return r
}
