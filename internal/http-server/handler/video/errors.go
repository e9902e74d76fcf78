package video

import "errors"

var (
	ErrUnknownField      = errors.New("unknown field given in multipart")
	ErrMissingFile       = errors.New("missing filename")
	ErrMissingDimensions = errors.New("missing new dimensions")
	ErrInvalidDimensions = errors.New("invalid new dimensions")
	ErrNotAVideo         = errors.New("file must be a video")
)
