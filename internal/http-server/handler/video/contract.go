package video

import (
	"context"
	"io"

	"vpaas/internal/domain"
)

type videoUsecase interface {
	SubmitVideo(ctx context.Context, file io.Reader, filename, contentType string, fileSize int64, dims domain.Dimensions) (*domain.TranscoderJob, error)
}
