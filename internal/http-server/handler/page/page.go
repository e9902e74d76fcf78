package page

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"vpaas/internal/domain"
	"vpaas/internal/upload"
	"vpaas/internal/web/route"
	"vpaas/internal/web/view"

	"github.com/wb-go/wbf/zlog"
)

const (
	maxMemory = 32 << 20
)

type PageHandler struct {
	uploader   uploader
	renderer   *view.Renderer
	dimensions domain.Dimensions
	logger     *zlog.Zerolog
}

func NewPageHandler(uploader uploader, renderer *view.Renderer, dimensions domain.Dimensions, logger *zlog.Zerolog) *PageHandler {
	return &PageHandler{
		uploader:   uploader,
		renderer:   renderer,
		dimensions: dimensions,
		logger:     logger,
	}
}

// Show renders the route matching the request path. Unmatched paths get
// the bare shell with a 404.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	matched := route.Match(r.URL.Path)

	status := http.StatusOK
	if matched == route.NotFound {
		status = http.StatusNotFound
	}

	h.render(w, status, matched, view.Idle{})
}

// Submit forwards the posted video to the upload endpoint. Failures are
// logged once and leave the form as it was.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, domain.DefaultMaxUploadSize)

	selection, cleanup, err := h.selectionFromForm(r)
	defer cleanup()
	if err != nil {
		h.logger.Error().Err(err).Msg("Upload failed")
		h.render(w, http.StatusOK, route.Home, view.Idle{})
		return
	}

	receipt, err := h.uploader.Submit(ctx, upload.NewRequest(selection, h.dimensions))
	if err != nil {
		h.logger.Error().Err(err).Msg("Upload failed")
		h.render(w, http.StatusOK, route.Home, view.Idle{})
		return
	}

	h.logger.Info().Str("job_id", receipt.ID).Msg("Upload submitted")
	h.render(w, http.StatusOK, route.Home, view.Submitted{JobID: receipt.ID})
}

func (h *PageHandler) selectionFromForm(r *http.Request) (upload.Selection, func(), error) {
	cleanup := func() {}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, cleanup, fmt.Errorf("failed to parse upload form: %w", err)
	}
	cleanup = func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to remove temporary upload files")
		}
	}

	file, header, err := r.FormFile(domain.FieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return upload.NoFileSelected{}, cleanup, nil
	}
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to open selected file: %w", err)
	}
	if header.Filename == "" {
		file.Close()
		return upload.NoFileSelected{}, cleanup, nil
	}

	removeAll := cleanup
	cleanup = func() {
		file.Close()
		removeAll()
	}

	return upload.FileSelected{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, cleanup, nil
}

func (h *PageHandler) render(w http.ResponseWriter, status int, r route.Route, state view.UploadState) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, r, state); err != nil {
		h.logger.Error().Err(err).Str("route", r.String()).Msg("Failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error().Err(err).Str("route", r.String()).Msg("Failed to write page")
	}
}
