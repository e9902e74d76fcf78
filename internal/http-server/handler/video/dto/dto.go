package dto

import "time"

type JobResponse struct {
	ID            string        `json:"id"`
	InputURI      string        `json:"input_uri"`
	OutputURI     string        `json:"output_uri"`
	NewDimensions DimensionsDTO `json:"new_dimensions"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type DimensionsDTO struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
