package broker

import "context"

// Producer publishes transcoder jobs for workers to pick up.
type Producer interface {
	Send(ctx context.Context, key, value []byte) error
	Close() error
}
