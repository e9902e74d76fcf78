package page

import (
	"context"

	"vpaas/internal/upload"
)

type uploader interface {
	Submit(ctx context.Context, req *upload.Request) (*upload.Receipt, error)
}
