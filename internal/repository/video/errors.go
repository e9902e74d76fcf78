package video

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrStorageError      = errors.New("storage error")
	ErrStorageValidation = errors.New("storage validation failed")
)
