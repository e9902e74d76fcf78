package app

import (
	"fmt"

	"vpaas/internal/config"
	"vpaas/internal/domain"
	page_h "vpaas/internal/http-server/handler/page"
	"vpaas/internal/http-server/router"
	"vpaas/internal/upload"
	"vpaas/internal/web/view"

	"github.com/wb-go/wbf/zlog"
)

// NewWebApp builds the front end: the page shell, the upload form and the
// client that forwards uploads to the orchestrator.
func NewWebApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}

	uploader := upload.NewClient(cfg.Upload.Endpoint, cfg.Upload.Timeout, logger)
	dims := domain.NewDimensions(cfg.Upload.Width, cfg.Upload.Height)

	h := &router.Handler{
		PageHandler: page_h.NewPageHandler(uploader, renderer, dims, logger),
	}

	logger.Info().
		Str("endpoint", uploader.Endpoint()).
		Uint32("width", dims.Width).
		Uint32("height", dims.Height).
		Msg("Web configuration")

	return newApp("web", cfg.Web, router.SetupRouter(h), logger), nil
}
