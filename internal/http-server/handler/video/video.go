package video

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"vpaas/internal/domain"
	"vpaas/internal/http-server/handler/video/dto"
	video_uc "vpaas/internal/usecase/video"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"
)

const (
	maxMemory = 32 << 20
)

type VideoHandler struct {
	usecase       videoUsecase
	validate      *validator.Validate
	maxUploadSize int64
	logger        *zlog.Zerolog
}

func NewVideoHandler(usecase videoUsecase, logger *zlog.Zerolog) *VideoHandler {
	return &VideoHandler{
		usecase:       usecase,
		validate:      validator.New(),
		maxUploadSize: domain.DefaultMaxUploadSize,
		logger:        logger,
	}
}

func (h *VideoHandler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "Hello, World!")
}

func (h *VideoHandler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "File too large", nil)
			return
		}
		h.logger.Warn().Err(err).Msg("Failed to parse multipart form")
		h.respondError(w, http.StatusBadRequest, "Invalid request format", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	if field, ok := unknownField(r.MultipartForm); ok {
		h.logger.Warn().Str("field", field).Msg("Unknown multipart field")
		h.respondError(w, http.StatusBadRequest, ErrUnknownField.Error(), nil)
		return
	}

	file, header, err := r.FormFile(domain.FieldFile)
	if err != nil {
		h.logger.Warn().Err(err).Msg("File not found in request")
		h.respondError(w, http.StatusBadRequest, ErrMissingFile.Error(), nil)
		return
	}
	defer file.Close()

	dims, err := h.parseDimensions(r.MultipartForm.Value[domain.FieldNewDimension])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	contentType, err := h.validateFile(header, file)
	if err != nil {
		h.logger.Warn().Err(err).Str("filename", header.Filename).Msg("Rejected upload")
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	job, err := h.usecase.SubmitVideo(ctx, file, header.Filename, contentType, header.Size, dims)
	if err != nil {
		h.handleUploadError(w, err, header.Filename)
		return
	}

	response := dto.JobResponse{
		ID:        job.ID,
		InputURI:  job.InputURI,
		OutputURI: job.OutputURI,
		NewDimensions: dto.DimensionsDTO{
			Width:  job.NewDimensions.Width,
			Height: job.NewDimensions.Height,
		},
		Status:    string(domain.StatusQueued),
		CreatedAt: job.CreatedAt,
	}

	h.logger.Info().
		Str("job_id", job.ID).
		Str("filename", header.Filename).
		Str("input_uri", job.InputURI).
		Msg("Video queued for transcoding")

	h.respondJSON(w, http.StatusCreated, response)
}

func unknownField(form *multipart.Form) (string, bool) {
	for name := range form.Value {
		if name != domain.FieldNewDimension {
			return name, true
		}
	}
	for name := range form.File {
		if name != domain.FieldFile {
			return name, true
		}
	}
	return "", false
}

func (h *VideoHandler) parseDimensions(values []string) (domain.Dimensions, error) {
	var dims domain.Dimensions

	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return dims, ErrMissingDimensions
	}

	if err := json.Unmarshal([]byte(values[0]), &dims); err != nil {
		return dims, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}

	if err := h.validate.Struct(dims); err != nil {
		return dims, fmt.Errorf("%w: width and height must be positive", ErrInvalidDimensions)
	}

	return dims, nil
}

// validateFile returns the content type to store the upload with. Missing
// or generic types are sniffed from the file head.
func (h *VideoHandler) validateFile(header *multipart.FileHeader, file multipart.File) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == domain.DefaultContentType {
		detected, err := mimetype.DetectReader(file)
		if err != nil {
			return "", fmt.Errorf("failed to detect content type: %w", err)
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return "", fmt.Errorf("failed to rewind file: %w", err)
		}
		if strings.HasPrefix(detected.String(), "video/") {
			contentType = detected.String()
		}
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if strings.HasPrefix(contentType, "video/") {
		return contentType, nil
	}
	if domain.IsVideoExtension(ext) {
		if contentType == "" {
			contentType = domain.DefaultContentType
		}
		return contentType, nil
	}

	return "", ErrNotAVideo
}

func (h *VideoHandler) handleUploadError(w http.ResponseWriter, err error, filename string) {
	switch {
	case errors.Is(err, video_uc.ErrStorageError):
		h.logger.Error().Err(err).Str("filename", filename).Msg("Failed to store upload")
		h.respondError(w, http.StatusBadGateway, "Failed to store video", err)
	case errors.Is(err, video_uc.ErrMessageQueueError):
		h.logger.Error().Err(err).Str("filename", filename).Msg("Failed to enqueue job")
		h.respondError(w, http.StatusBadGateway, "Failed to queue transcoding job", err)
	default:
		h.logger.Error().Err(err).Str("filename", filename).Msg("Upload failed")
		h.respondError(w, http.StatusInternalServerError, "Failed to upload file", err)
	}
}

func (h *VideoHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		h.logger.Error().Err(err).Interface("data", data).Msg("Failed to encode response")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *VideoHandler) respondError(w http.ResponseWriter, status int, message string, err error) {
	response := dto.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}

	if err != nil {
		response.Details = err.Error()
	}

	h.respondJSON(w, status, response)
}
