package domain

import "time"

// Dimensions is the target frame size of a transcode.
type Dimensions struct {
	Width  uint32 `json:"width" validate:"required,gt=0"`
	Height uint32 `json:"height" validate:"required,gt=0"`
}

func NewDimensions(width, height uint32) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// Downscale240p is the size offered by the upload form.
var Downscale240p = NewDimensions(320, 240)

type JobStatus string

const (
	StatusQueued JobStatus = "queued"
)

// TranscoderJob is the record pushed onto the queue for transcoder workers.
type TranscoderJob struct {
	ID            string     `json:"id"`
	InputURI      string     `json:"input_uri"`
	OutputURI     string     `json:"output_uri"`
	NewDimensions Dimensions `json:"new_dimensions"`
	AudioCodec    *string    `json:"audio_codec"`
	CreatedAt     time.Time  `json:"-"`
}

func NewTranscoderJob(id, inputURI string, dims Dimensions, audioCodec *string) *TranscoderJob {
	return &TranscoderJob{
		ID:            id,
		InputURI:      inputURI,
		OutputURI:     inputURI + OutputExtension,
		NewDimensions: dims,
		AudioCodec:    audioCodec,
		CreatedAt:     time.Now(),
	}
}

const (
	PathPrefixUploads = "uploads/"
	DefaultUploadExt  = ".mov"
	OutputExtension   = ".mp4"
)

const (
	DefaultMaxUploadSize = 1024 * 100_000
	DefaultContentType   = "application/octet-stream"
)

const (
	FieldFile         = "file"
	FieldNewDimension = "new_dimension"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".m4v":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".avi":  true,
	".mpeg": true,
	".mpg":  true,
	".ogv":  true,
	".3gp":  true,
}

// IsVideoExtension reports whether ext (with leading dot, lower case) names
// a container the transcoder accepts.
func IsVideoExtension(ext string) bool {
	return videoExtensions[ext]
}
