package video

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"vpaas/internal/domain"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

const cleanupTimeout = 10 * time.Second

type VideoUsecase struct {
	fileRepo fileRepository
	queue    jobQueue
	logger   *zlog.Zerolog
}

func NewVideoUsecase(fileRepo fileRepository, queue jobQueue, logger *zlog.Zerolog) *VideoUsecase {
	return &VideoUsecase{
		fileRepo: fileRepo,
		queue:    queue,
		logger:   logger,
	}
}

// SubmitVideo stores the upload and queues a transcoder job for it. The
// stored object is removed again when the job cannot be queued.
func (v *VideoUsecase) SubmitVideo(ctx context.Context, file io.Reader, filename, contentType string, fileSize int64, dims domain.Dimensions) (*domain.TranscoderJob, error) {
	jobID := uuid.New().String()
	objectName := domain.PathPrefixUploads + jobID + uploadExt(filename)

	inputURI, err := v.fileRepo.SaveUpload(ctx, objectName, file, fileSize, contentType)
	if err != nil {
		v.logger.Error().Err(err).Str("filename", filename).Msg("Failed to save upload")
		return nil, fmt.Errorf("%w: %w", ErrStorageError, err)
	}

	job := domain.NewTranscoderJob(jobID, inputURI, dims, nil)

	payload, err := json.Marshal(job)
	if err != nil {
		v.removeUpload(ctx, inputURI)
		return nil, fmt.Errorf("failed to encode job: %w", err)
	}

	if err := v.queue.Send(ctx, []byte(job.ID), payload); err != nil {
		v.logger.Error().Err(err).Str("job_id", job.ID).Msg("Failed to enqueue job")
		v.removeUpload(ctx, inputURI)
		return nil, fmt.Errorf("%w: %w", ErrMessageQueueError, err)
	}

	v.logger.Info().
		Str("job_id", job.ID).
		Str("filename", filename).
		Uint32("width", dims.Width).
		Uint32("height", dims.Height).
		Msg("Enqueued new job")

	return job, nil
}

// removeUpload outlives the request context so a cancelled upload still
// gets cleaned up.
func (v *VideoUsecase) removeUpload(ctx context.Context, path string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := v.fileRepo.DeleteObject(ctx, path); err != nil {
		v.logger.Error().Err(err).Str("path", path).Msg("Failed to delete orphaned upload")
	}
}

func uploadExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if domain.IsVideoExtension(ext) {
		return ext
	}
	return domain.DefaultUploadExt
}
