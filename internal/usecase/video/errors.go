package video

import "errors"

var (
	ErrStorageError      = errors.New("storage error")
	ErrMessageQueueError = errors.New("message queue error")
)
