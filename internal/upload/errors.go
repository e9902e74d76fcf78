package upload

import (
	"errors"
	"fmt"
)

var (
	ErrNoFileSelected      = errors.New("no file selected")
	ErrInvalidDimensions   = errors.New("invalid dimensions")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrEndpointUnreachable = errors.New("endpoint unreachable")
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}
