package upload

import (
	"fmt"
	"io"
	"time"

	"vpaas/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Selection is the file input of the upload form: either nothing was
// picked or exactly one file was.
type Selection interface {
	selection()
}

type NoFileSelected struct{}

type FileSelected struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (NoFileSelected) selection() {}
func (FileSelected) selection()   {}

// Request is the typed payload of one upload.
type Request struct {
	File         Selection
	NewDimension domain.Dimensions
}

func NewRequest(file Selection, dims domain.Dimensions) *Request {
	return &Request{File: file, NewDimension: dims}
}

var validate = validator.New()

// Validate returns the selected file when the request can be sent.
func (r *Request) Validate() (*FileSelected, error) {
	var file *FileSelected

	switch f := r.File.(type) {
	case FileSelected:
		file = &f
	case *FileSelected:
		file = f
	case NoFileSelected, nil:
		return nil, ErrNoFileSelected
	default:
		return nil, fmt.Errorf("unsupported selection %T", r.File)
	}

	if file == nil || file.Name == "" || file.Body == nil {
		return nil, ErrNoFileSelected
	}

	if err := validate.Struct(r.NewDimension); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}

	return file, nil
}

// Receipt is the orchestrator's answer to an accepted upload.
type Receipt struct {
	ID        string    `json:"id"`
	InputURI  string    `json:"input_uri"`
	OutputURI string    `json:"output_uri"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
