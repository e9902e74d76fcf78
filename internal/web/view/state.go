package view

// UploadState is the state of the upload view. It only moves from Idle to
// Submitted when the endpoint accepted the video.
type UploadState interface {
	uploadState()
}

type Idle struct{}

type Submitted struct {
	JobID string
}

func (Idle) uploadState()      {}
func (Submitted) uploadState() {}
