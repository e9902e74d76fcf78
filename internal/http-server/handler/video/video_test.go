package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"vpaas/internal/domain"
	"vpaas/internal/http-server/handler/video/dto"
	video_uc "vpaas/internal/usecase/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/zlog"
)

type fakeUsecase struct {
	calls       int
	filename    string
	contentType string
	content     string
	dims        domain.Dimensions
	err         error
}

func (f *fakeUsecase) SubmitVideo(ctx context.Context, file io.Reader, filename, contentType string, fileSize int64, dims domain.Dimensions) (*domain.TranscoderJob, error) {
	f.calls++
	f.filename = filename
	f.contentType = contentType
	f.dims = dims

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.content = string(data)

	if f.err != nil {
		return nil, f.err
	}
	job := domain.NewTranscoderJob("job-1", "uploads/job-1.mp4", dims, nil)
	job.CreatedAt = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	return job, nil
}

type part struct {
	name        string
	filename    string
	contentType string
	content     string
}

func uploadRequest(t *testing.T, parts ...part) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		if p.filename != "" {
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, p.name, p.filename))
		} else {
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, p.name))
		}
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(w, p.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/videos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newHandler(uc videoUsecase) *VideoHandler {
	zlog.Init()
	return NewVideoHandler(uc, &zlog.Logger)
}

var (
	clipPart = part{name: "file", filename: "clip.mp4", contentType: "video/mp4", content: "binary video bytes"}
	dimPart  = part{name: "new_dimension", content: `{"width":320,"height":240}`}
)

func TestUploadVideo(t *testing.T) {
	uc := &fakeUsecase{}
	h := newHandler(uc)

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, uploadRequest(t, clipPart, dimPart))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.Equal(t, 1, uc.calls)
	assert.Equal(t, "clip.mp4", uc.filename)
	assert.Equal(t, "video/mp4", uc.contentType)
	assert.Equal(t, "binary video bytes", uc.content)
	assert.Equal(t, domain.Downscale240p, uc.dims)

	var resp dto.JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "job-1", resp.ID)
	assert.Equal(t, "uploads/job-1.mp4.mp4", resp.OutputURI)
	assert.Equal(t, "queued", resp.Status)
	assert.Equal(t, uint32(320), resp.NewDimensions.Width)
}

func TestUploadVideoRejects(t *testing.T) {
	tests := []struct {
		name        string
		parts       []part
		wantMessage string
	}{
		{
			name:        "unknown field",
			parts:       []part{clipPart, dimPart, {name: "title", content: "holiday"}},
			wantMessage: "unknown field given in multipart",
		},
		{
			name:        "missing file",
			parts:       []part{dimPart},
			wantMessage: "missing filename",
		},
		{
			name:        "missing dimensions",
			parts:       []part{clipPart},
			wantMessage: "missing new dimensions",
		},
		{
			name:        "malformed dimensions",
			parts:       []part{clipPart, {name: "new_dimension", content: `{"width":"wide"}`}},
			wantMessage: "invalid new dimensions",
		},
		{
			name:        "zero dimensions",
			parts:       []part{clipPart, {name: "new_dimension", content: `{"width":0,"height":240}`}},
			wantMessage: "invalid new dimensions",
		},
		{
			name:        "not a video",
			parts:       []part{{name: "file", filename: "notes.txt", contentType: "text/plain", content: "hello"}, dimPart},
			wantMessage: "file must be a video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{}
			h := newHandler(uc)

			rec := httptest.NewRecorder()
			h.UploadVideo(rec, uploadRequest(t, tt.parts...))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, uc.calls)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Message, tt.wantMessage)
		})
	}
}

func TestUploadVideoAcceptsOctetStreamWithVideoExtension(t *testing.T) {
	uc := &fakeUsecase{}
	h := newHandler(uc)

	file := part{name: "file", filename: "clip.mov", contentType: "application/octet-stream", content: "not really a movie"}

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, uploadRequest(t, file, dimPart))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/octet-stream", uc.contentType)
	assert.Equal(t, "not really a movie", uc.content)
}

func TestUploadVideoUsecaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"storage", fmt.Errorf("%w: bucket gone", video_uc.ErrStorageError), http.StatusBadGateway},
		{"queue", fmt.Errorf("%w: broker down", video_uc.ErrMessageQueueError), http.StatusBadGateway},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandler(&fakeUsecase{err: tt.err})

			rec := httptest.NewRecorder()
			h.UploadVideo(rec, uploadRequest(t, clipPart, dimPart))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUploadVideoIgnoresExtraDimensionKeys(t *testing.T) {
	uc := &fakeUsecase{}
	h := newHandler(uc)

	dims := part{name: "new_dimension", content: `{"width":640,"height":480,"fps":30}`}

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, uploadRequest(t, clipPart, dims))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.NewDimensions(640, 480), uc.dims)
}

func TestUploadVideoTooLarge(t *testing.T) {
	uc := &fakeUsecase{}
	h := newHandler(uc)
	h.maxUploadSize = 64

	big := part{name: "file", filename: "clip.mp4", contentType: "video/mp4", content: strings.Repeat("f", 4096)}

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, uploadRequest(t, big, dimPart))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestUploadVideoNotMultipart(t *testing.T) {
	h := newHandler(&fakeUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/videos", bytes.NewBufferString(`{"file":"clip.mp4"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.UploadVideo(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHello(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(&fakeUsecase{}).Hello(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, World!", rec.Body.String())
}
