package minio

import (
	"context"
	"fmt"
	"io"

	"vpaas/internal/config"
	"vpaas/internal/repository/video"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

type FileRepository struct {
	client  *minio.Client
	bucket  string
	retries retry.Strategy
	logger  *zlog.Zerolog
}

func NewMinIORepository(cfg *config.Config, retries retry.Strategy, logger *zlog.Zerolog) (*FileRepository, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
		Region: cfg.Storage.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	repo := &FileRepository{
		client:  client,
		bucket:  cfg.Storage.Bucket,
		retries: retries,
		logger:  logger,
	}

	if err := repo.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *FileRepository) ensureBucket(ctx context.Context) error {
	if r.bucket == "" {
		return fmt.Errorf("%w: bucket name is empty", video.ErrStorageValidation)
	}

	err := retry.Do(func() error {
		exists, err := r.client.BucketExists(ctx, r.bucket)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		return r.client.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{})
	}, r.retries)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare bucket %q: %v", video.ErrStorageError, r.bucket, err)
	}

	r.logger.Info().Str("bucket", r.bucket).Msg("Storage bucket ready")
	return nil
}

// SaveUpload streams data into the bucket. size may be -1 when unknown.
func (r *FileRepository) SaveUpload(ctx context.Context, objectName string, data io.Reader, size int64, contentType string) (string, error) {
	if size < 0 {
		size = -1
	}

	info, err := r.client.PutObject(ctx, r.bucket, objectName, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to put %s: %v", video.ErrStorageError, objectName, err)
	}

	r.logger.Debug().
		Str("bucket", r.bucket).
		Str("object", objectName).
		Int64("size", info.Size).
		Msg("Upload stored")

	return objectName, nil
}

func (r *FileRepository) DeleteObject(ctx context.Context, path string) error {
	err := r.client.RemoveObject(ctx, r.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return video.ErrFileNotFound
		}
		return fmt.Errorf("%w: failed to remove %s: %v", video.ErrStorageError, path, err)
	}
	return nil
}
