package video

import (
	"context"
	"io"
)

type fileRepository interface {
	SaveUpload(ctx context.Context, objectName string, data io.Reader, size int64, contentType string) (string, error)
	DeleteObject(ctx context.Context, path string) error
}

type jobQueue interface {
	Send(ctx context.Context, key, value []byte) error
}
