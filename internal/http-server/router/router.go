package router

import (
	"net/http"

	"vpaas/internal/http-server/handler/page"
	"vpaas/internal/http-server/middleware"
	"vpaas/internal/web/route"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	PageHandler *page.PageHandler
}

// SetupRouter mounts every route of the front end's route table. Paths
// outside the table fall through to the page handler's 404.
func SetupRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", health)

	for _, rt := range route.All() {
		r.Get(rt.Path(), h.PageHandler.Show)
	}
	r.Post(route.Home.Path(), h.PageHandler.Submit)

	r.NotFound(h.PageHandler.Show)

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
